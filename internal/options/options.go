package options

// Sample rate limits for raw MPX input
const (
	MinimumSampleRate = 128000.0 // Hz
	TargetSampleRate  = 171000.0 // Hz, rate assumed when none is given
)

// InputType selects how the decoder acquires its input
type InputType int

const (
	InputHex InputType = iota
	InputASCIIBits
	InputMPXStdin
	InputMPXSndfile
	InputTEF6686
)

func (t InputType) String() string {
	switch t {
	case InputHex:
		return "hex"
	case InputASCIIBits:
		return "bits"
	case InputMPXStdin:
		return "mpx"
	case InputMPXSndfile:
		return "sndfile"
	case InputTEF6686:
		return "tef"
	}
	return "unknown"
}

// IsMPX reports whether the input carries a raw MPX signal
func (t InputType) IsMPX() bool {
	return t == InputMPXStdin || t == InputMPXSndfile
}

// OutputType selects the output encoding
type OutputType int

const (
	OutputHex OutputType = iota
	OutputJSON
)

func (t OutputType) String() string {
	switch t {
	case OutputHex:
		return "hex"
	case OutputJSON:
		return "json"
	}
	return "unknown"
}

// Disposition tells the host process how to conclude
type Disposition int

const (
	Continue Disposition = iota
	ExitSuccess
	ExitFailure
)

func (d Disposition) String() string {
	switch d {
	case Continue:
		return "continue"
	case ExitSuccess:
		return "exit-success"
	case ExitFailure:
		return "exit-failure"
	}
	return "unknown"
}

// Options holds the validated command-line configuration
type Options struct {
	InputType     InputType
	OutputType    OutputType
	SoundFilename string
	SampleRate    float64
	RateDefined   bool
	NumChannels   int
	FeedThru      bool
	ShowPartial   bool
	ShowRaw       bool
	BLER          bool
	OutputHex     bool
	RBDS          bool
	Timestamp     bool
	TimeFormat    string
	LoctableDirs  []string
	PrintUsage    bool
	PrintVersion  bool
	Disposition   Disposition
}

// Default returns the configuration used when no options are given
func Default() Options {
	return Options{
		InputType:   InputMPXStdin,
		OutputType:  OutputJSON,
		NumChannels: 1,
		Disposition: Continue,
	}
}
