package main

/*------------------------------------------------------------------
 *
 * Name:        ttx2text
 *
 * Purpose:     Utility program for decoding captured Teletext PES
 *		payloads into subtitle text.
 *
 * Description: Reads a YAML capture file listing PES payloads with
 *		their presentation timestamps, runs them through the
 *		decoder and prints the resulting samples as plain text
 *		or SRT.
 *
 * Usage:	ttx2text [options] capture.yaml
 *
 *		A capture file looks like:
 *
 *		    pid: 101
 *		    packets:
 *		      - pts: 1000
 *		        payload: "10 03 2c 00 ..."
 *
 *----------------------------------------------------------------*/

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	teletext "github.com/bldsoft/go-teletext/src"
)

type capturePacket struct {
	PTS     int64  `yaml:"pts"`
	Payload string `yaml:"payload"`
}

type captureFile struct {
	PID     uint32          `yaml:"pid"`
	Packets []capturePacket `yaml:"packets"`
}

func main() {
	var colour = pflag.BoolP("colour", "c", false, "Embed <font> colour tags in the output text.")
	var srt = pflag.Bool("srt", false, "Write SRT instead of plain text.")
	var output = pflag.StringP("output", "o", "", "Write to file instead of stdout.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede plain text samples with 'strftime' format time stamp.")
	var verbose = pflag.BoolP("verbose", "v", false, "Enable debug output.")
	var version = pflag.Bool("version", false, "Print version and exit.")
	pflag.Parse()

	if *version {
		fmt.Println(teletext.Version())
		os.Exit(0)
	}

	var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ttx2text"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: ttx2text [options] capture.yaml\n")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	var captureData, readErr = os.ReadFile(pflag.Arg(0))
	if readErr != nil {
		logger.Fatal("Can't read capture file.", "file", pflag.Arg(0), "error", readErr)
	}

	var capture captureFile
	if unmarshalErr := yaml.Unmarshal(captureData, &capture); unmarshalErr != nil {
		logger.Fatal("Capture file is not valid YAML.", "file", pflag.Arg(0), "error", unmarshalErr)
	}

	var samples []*teletext.TextSample
	var decoder = teletext.NewDecoder(teletext.DecoderOptions{
		Emit: func(sample *teletext.TextSample) {
			samples = append(samples, sample)
		},
		StreamInfo: func(info *teletext.StreamInfo) {
			logger.Info("Teletext subtitle stream.", "pid", info.PID, "timescale", info.Timescale)
		},
		AddColours: *colour,
		Logger:     logger,
	})

	for i, packet := range capture.Packets {
		var payload, decodeErr = hex.DecodeString(despace(packet.Payload))
		if decodeErr != nil {
			logger.Fatal("Bad payload hex in capture file.", "packet", i, "error", decodeErr)
		}
		decoder.ProcessPES(capture.PID, packet.PTS, payload)
	}
	decoder.Flush()

	logger.Debug("Decoding finished.", "packets", len(capture.Packets), "samples", len(samples))

	var out io.Writer = os.Stdout
	if *output != "" {
		var f, createErr = os.Create(*output)
		if createErr != nil {
			logger.Fatal("Can't open output file for write.", "file", *output, "error", createErr)
		}
		defer f.Close()
		out = f
	}

	if *srt {
		writeSRT(out, samples)
	} else {
		writePlain(out, samples, *timestampFormat)
	}
}

func despace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

func writePlain(out io.Writer, samples []*teletext.TextSample, timestampFormat string) {
	for _, sample := range samples {
		if timestampFormat != "" {
			// Sample timestamps are offsets; render them relative to
			// the epoch.
			var stamp = time.UnixMilli(sample.StartMS).UTC()
			var formatted, formatErr = strftime.Format(timestampFormat, stamp)
			if formatErr == nil {
				fmt.Fprintf(out, "[%s] ", formatted)
			}
		}
		fmt.Fprintf(out, "%s\n", sample.Body)
	}
}

func writeSRT(out io.Writer, samples []*teletext.TextSample) {
	for i, sample := range samples {
		fmt.Fprintf(out, "%d\n%s --> %s\n%s\n\n",
			i+1, srtTime(sample.StartMS), srtTime(sample.EndMS), sample.Body)
	}
}

func srtTime(ms int64) string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		ms/3600000, (ms/60000)%60, (ms/1000)%60, ms%1000)
}
