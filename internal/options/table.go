package options

import (
	"io"

	"github.com/spf13/pflag"
)

type action int

const (
	actInputBits action = iota
	actChannels
	actFeedThru
	actBLER
	actFile
	actInputHex
	actInput
	actLoctable
	actOutput
	actShowPartial
	actSampleRate
	actShowRaw
	actTimestamp
	actRBDS
	actVersion
	actOutputHex
	actHelp
)

// Option describes one command-line option
type Option struct {
	Short  string // single character, empty if the option has no short form
	Long   string
	HasArg bool
	Usage  string // a `WORD` in backquotes names the argument in help output

	action action
}

var table = []Option{
	{Short: "b", Long: "input-bits", Usage: "Same as --input bits (for backwards compatibility)", action: actInputBits},
	{Short: "c", Long: "channels", HasArg: true, Usage: "Number of channels in the raw input signal; each is decoded separately (`CHANS`)", action: actChannels},
	{Short: "e", Long: "feed-through", Usage: "Echo the input signal to stdout and print decoded groups to stderr", action: actFeedThru},
	{Short: "E", Long: "bler", Usage: "Display the average block error rate, or the percentage of blocks that had errors before error correction", action: actBLER},
	{Short: "f", Long: "file", HasArg: true, Usage: "Read MPX input from a wave file with headers (`FILENAME`)", action: actFile},
	{Short: "h", Long: "input-hex", Usage: "Same as --input hex (for backwards compatibility)", action: actInputHex},
	{Short: "i", Long: "input", HasArg: true, Usage: "Decode input of the given `FORMAT`: hex, mpx, tef or bits", action: actInput},
	{Short: "l", Long: "loctable", HasArg: true, Usage: "Load TMC location table from a directory in TMC Exchange format; may be repeated (`DIR`)", action: actLoctable},
	{Short: "o", Long: "output", HasArg: true, Usage: "Print output in the given `FORMAT`: hex or json", action: actOutput},
	{Short: "p", Long: "show-partial", Usage: "Show some decoded results even if RDS reception is unreliable", action: actShowPartial},
	{Short: "r", Long: "samplerate", HasArg: true, Usage: "Set stdin sample frequency in Hz; accepts k and M suffixes (`RATE`)", action: actSampleRate},
	{Short: "R", Long: "show-raw", Usage: "Include raw group data as hex in the JSON stream", action: actShowRaw},
	{Short: "t", Long: "timestamp", HasArg: true, Usage: "Add time of decoding to JSON groups, see man strftime (`TIMEFORMAT`)", action: actTimestamp},
	{Short: "u", Long: "rbds", Usage: "RBDS mode; use North American program type names and \"back-calculate\" the station's call sign from its PI code", action: actRBDS},
	{Short: "v", Long: "version", Usage: "Print version string and exit", action: actVersion},
	{Short: "x", Long: "output-hex", Usage: "Same as --output hex (for backwards compatibility)", action: actOutputHex},
	{Short: "?", Long: "help", Usage: "Show this help message and exit", action: actHelp},
}

var byLong = indexTable(table)

func indexTable(opts []Option) map[string]Option {
	m := make(map[string]Option, len(opts))
	for _, opt := range opts {
		m[opt.Long] = opt
	}
	return m
}

// Table returns a copy of the option table in help order
func Table() []Option {
	return append([]Option(nil), table...)
}

// newFlagSet registers the option table on a fresh flag set. Values are
// never stored in the flag set; Parse consumes them through ParseAll.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("goredsea", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	for _, opt := range table {
		if opt.HasArg {
			fs.StringP(opt.Long, opt.Short, "", opt.Usage)
		} else {
			fs.BoolP(opt.Long, opt.Short, false, opt.Usage)
		}
	}

	return fs
}

// Usage returns the formatted option list
func Usage() string {
	return newFlagSet().FlagUsages()
}
