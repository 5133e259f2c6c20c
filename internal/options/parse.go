package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var errStopScan = errors.New("stop scan")

// parser accumulates one Options record over a single pass
type parser struct {
	opts    Options
	errs    []error
	forced  bool // version or help ended the scan
	badRate bool // last -r value did not parse
}

// Parse scans args (without the program name) and returns the resulting
// configuration. It never fails: the outcome is carried by Disposition,
// PrintUsage and PrintVersion. Failures and the default sample rate
// notice are reported on diag, which may be nil.
func Parse(args []string, diag logrus.FieldLogger) Options {
	p := &parser{opts: Default()}

	fs := newFlagSet()
	err := fs.ParseAll(args, p.apply)

	switch {
	case p.forced:
		// A forced success never reports earlier failures
		p.errs = nil
	case err != nil:
		p.fail(err)
	default:
		p.validate(fs.Args(), diag)
	}

	p.finish(diag)
	return p.opts
}

func (p *parser) fail(err error) {
	p.errs = append(p.errs, err)
	p.opts.Disposition = ExitFailure
}

// apply performs the action of a single option occurrence
func (p *parser) apply(flag *pflag.Flag, value string) error {
	opt, ok := byLong[flag.Name]
	if !ok {
		return fmt.Errorf("unknown flag: --%s", flag.Name)
	}

	if !opt.HasArg {
		on, err := strconv.ParseBool(value)
		if err != nil {
			p.fail(fmt.Errorf("invalid value '%s' for --%s", value, opt.Long))
			return nil
		}
		if !on {
			return nil
		}
	}

	switch opt.action {
	case actInputBits:
		p.opts.InputType = InputASCIIBits
	case actChannels:
		n, ok := parseCount(value)
		if !ok {
			p.fail(fmt.Errorf("%w '%s'", ErrChannelValue, value))
			break
		}
		p.opts.NumChannels = n
		if n < 1 {
			p.fail(fmt.Errorf("%w, got '%s'", ErrChannelCount, value))
		}
	case actFeedThru:
		p.opts.FeedThru = true
	case actBLER:
		p.opts.BLER = true
	case actFile:
		p.opts.SoundFilename = value
		p.opts.InputType = InputMPXSndfile
	case actInputHex:
		p.opts.InputType = InputHex
	case actInput:
		switch value {
		case "hex":
			p.opts.InputType = InputHex
		case "mpx":
			p.opts.InputType = InputMPXStdin
		case "tef":
			p.opts.InputType = InputTEF6686
		case "bits":
			p.opts.InputType = InputASCIIBits
		default:
			p.fail(fmt.Errorf("%w '%s'", ErrUnknownInput, value))
		}
	case actLoctable:
		p.opts.LoctableDirs = append(p.opts.LoctableDirs, value)
	case actOutput:
		switch value {
		case "hex":
			p.opts.OutputType = OutputHex
		case "json":
			p.opts.OutputType = OutputJSON
		default:
			p.fail(fmt.Errorf("%w '%s'", ErrUnknownOutput, value))
		}
	case actShowPartial:
		p.opts.ShowPartial = true
	case actSampleRate:
		p.opts.RateDefined = true
		rate, err := ParseMagnitude(value)
		if err != nil {
			p.badRate = true
			p.fail(err)
			break
		}
		p.badRate = false
		p.opts.SampleRate = rate
	case actShowRaw:
		p.opts.ShowRaw = true
	case actTimestamp:
		p.opts.Timestamp = true
		p.opts.TimeFormat = value
	case actRBDS:
		p.opts.RBDS = true
	case actVersion:
		p.opts.PrintVersion = true
		p.forceSuccess()
		return errStopScan
	case actOutputHex:
		p.opts.OutputType = OutputHex
		p.opts.OutputHex = true
	case actHelp:
		p.opts.PrintUsage = true
		p.forceSuccess()
		return errStopScan
	}

	return nil
}

func (p *parser) forceSuccess() {
	p.forced = true
	p.opts.Disposition = ExitSuccess
}

// validate runs the cross-option checks once the scan has completed
func (p *parser) validate(rest []string, diag logrus.FieldLogger) {
	o := &p.opts

	if len(rest) > 0 {
		p.fail(fmt.Errorf("%w: %s", ErrExtraArguments, strings.Join(rest, " ")))
	}
	if o.FeedThru && o.InputType == InputMPXSndfile {
		p.fail(ErrFeedThruSndfile)
	}
	if o.NumChannels > 1 && !o.InputType.IsMPX() {
		p.fail(ErrMultiChannelInput)
	}
	if o.RateDefined && !p.badRate && o.SampleRate < MinimumSampleRate {
		p.fail(&SampleRateError{Rate: o.SampleRate})
	}

	assumingRawMPX := o.InputType == InputMPXStdin && !o.PrintUsage && o.Disposition == Continue
	if assumingRawMPX && !o.RateDefined {
		if diag != nil {
			diag.Warnf("raw MPX sample rate not defined, assuming %s Hz", formatHz(TargetSampleRate))
		}
		o.SampleRate = TargetSampleRate
	}
}

// finish claims usage as the exit reason for failures and reports them
func (p *parser) finish(diag logrus.FieldLogger) {
	if p.opts.Disposition == ExitFailure && !p.opts.PrintVersion {
		p.opts.PrintUsage = true
	}

	if diag == nil {
		return
	}
	for _, err := range p.errs {
		diag.Error(err.Error())
	}
}
