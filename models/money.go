package models

type Currency string

const (
	CurrencyLocal Currency = "local"
	CurrencyUSD   Currency = "usd"
)

// Money accumulates amounts per currency. The two slots are independent:
// nothing in the pipeline ever converts between them.
type Money struct {
	Local float64
	USD   float64
}

func (m Money) Add(other Money) Money {
	return Money{
		Local: m.Local + other.Local,
		USD:   m.USD + other.USD,
	}
}

func (m Money) AddIn(currency Currency, amount float64) Money {
	switch currency {
	case CurrencyUSD:
		m.USD += amount
	default:
		m.Local += amount
	}
	return m
}

func (m Money) Sub(other Money) Money {
	return Money{
		Local: m.Local - other.Local,
		USD:   m.USD - other.USD,
	}
}

func (m Money) Div(divisor float64) Money {
	return Money{
		Local: m.Local / divisor,
		USD:   m.USD / divisor,
	}
}

func (m Money) In(currency Currency) float64 {
	if currency == CurrencyUSD {
		return m.USD
	}
	return m.Local
}
