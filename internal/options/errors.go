package options

import (
	"errors"
	"fmt"
	"strconv"
)

// Validation errors
var (
	ErrUnknownInput      = errors.New("unknown input format")
	ErrUnknownOutput     = errors.New("unknown output format")
	ErrChannelCount      = errors.New("number of channels must be greater than 0")
	ErrChannelValue      = errors.New("invalid channel count")
	ErrSampleRateValue   = errors.New("invalid sample rate")
	ErrSampleRateTooLow  = errors.New("sample rate below minimum")
	ErrFeedThruSndfile   = errors.New("feed-thru is not supported for audio file inputs")
	ErrMultiChannelInput = errors.New("multi-channel input is only supported for MPX signals")
	ErrExtraArguments    = errors.New("unexpected arguments")
)

// SampleRateError reports a sample rate under MinimumSampleRate
type SampleRateError struct {
	Rate float64
}

func (e *SampleRateError) Error() string {
	return fmt.Sprintf("sample rate set to %s, must be %s Hz or higher",
		formatHz(e.Rate), formatHz(MinimumSampleRate))
}

// Is matches ErrSampleRateTooLow
func (e *SampleRateError) Is(target error) bool {
	return target == ErrSampleRateTooLow
}

func formatHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate checks the cross-option invariants of o
func (o Options) Validate() error {
	var errs []error

	if o.NumChannels < 1 {
		errs = append(errs, ErrChannelCount)
	}
	if o.FeedThru && o.InputType == InputMPXSndfile {
		errs = append(errs, ErrFeedThruSndfile)
	}
	if o.NumChannels > 1 && !o.InputType.IsMPX() {
		errs = append(errs, ErrMultiChannelInput)
	}
	if o.RateDefined && o.SampleRate < MinimumSampleRate {
		errs = append(errs, &SampleRateError{Rate: o.SampleRate})
	}

	return errors.Join(errs...)
}
