package monitor

import (
	"errors"
	"slices"

	"fxmonitor/internal/domain"
)

var ErrCodeRequired = errors.New("currency code is required")

// Validator checks request parameters against the fixed monitored sets
// before they reach the aggregator.
type Validator struct {
	codes   []string
	windows []string
}

func (v *Validator) ValidateCode(code string) error {
	if code == "" {
		return ErrCodeRequired
	}
	if !domain.CurrencyCode(code).Supported() {
		return domain.ErrCurrencyUnsupported
	}
	return nil
}

// ValidateWindow accepts the empty string: callers fall back to the
// configured default preset.
func (v *Validator) ValidateWindow(window string) error {
	if window == "" {
		return nil
	}
	if !domain.WindowSpec(window).Supported() {
		return domain.ErrWindowUnsupported
	}
	return nil
}

func (v *Validator) SupportedCodes() []string {
	return slices.Clone(v.codes)
}

func (v *Validator) SupportedWindows() []string {
	return slices.Clone(v.windows)
}

func NewValidator() *Validator {
	currencies := domain.SupportedCurrencies()
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, string(c))
	}

	presets := domain.SupportedWindows()
	windows := make([]string, 0, len(presets))
	for _, w := range presets {
		windows = append(windows, string(w))
	}

	return &Validator{codes: codes, windows: windows}
}
