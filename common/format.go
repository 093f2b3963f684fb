package common

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders monetary amounts as en-US locale currency
// strings. It is bound to a base currency at construction and never fails:
// an unrecognized code is logged and formatted as USD instead.
type CurrencyFormatter struct {
	base    currency.Unit
	printer *message.Printer
	logger  *Logger
}

// NewCurrencyFormatter creates a formatter for the given base currency code.
// An invalid base code falls back to USD.
func NewCurrencyFormatter(baseCurrency string, logger *Logger) *CurrencyFormatter {
	if logger == nil {
		logger = NewSilentLogger()
	}

	base, err := currency.ParseISO(baseCurrency)
	if err != nil {
		logger.Warn().Str("code", baseCurrency).Msg("Invalid base currency code, falling back to USD")
		base = currency.USD
	}

	return &CurrencyFormatter{
		base:    base,
		printer: message.NewPrinter(language.AmericanEnglish),
		logger:  logger,
	}
}

// BaseCurrency returns the ISO code the formatter defaults to.
func (f *CurrencyFormatter) BaseCurrency() string {
	return f.base.String()
}

// Format renders an amount in the base currency.
func (f *CurrencyFormatter) Format(value float64) string {
	return f.printer.Sprint(currency.NarrowSymbol(f.base.Amount(value)))
}

// FormatIn renders an amount in the given currency code. An unrecognized
// code is logged and formatted as USD; formatting never returns an error.
func (f *CurrencyFormatter) FormatIn(value float64, code string) string {
	if code == "" {
		return f.Format(value)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		f.logger.Warn().Str("code", code).Msg("Invalid currency code, falling back to USD")
		unit = currency.USD
	}

	return f.printer.Sprint(currency.NarrowSymbol(unit.Amount(value)))
}
