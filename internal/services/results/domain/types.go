// Package domain defines scored results
package domain

// Result is a row of resultdata
type Result struct {
	ID         int64    `json:"id"`
	Tweet      string   `json:"tweet"`
	Prediction *float64 `json:"prediction"`
}

// Score returns the prediction or 0 when it is null
func (r Result) Score() float64 {
	if r.Prediction == nil {
		return 0
	}
	return *r.Prediction
}
