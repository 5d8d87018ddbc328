package models

import (
	"fmt"
	"math"
	"strconv"
)

// FormatUSD formats an amount as whole US dollars with thousands
// separators, e.g. 1250000 -> "$1,250,000". Amounts are rounded to the
// nearest dollar; non-finite values format as $0.
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	return fmt.Sprintf("%s$%s", sign, grouped)
}
