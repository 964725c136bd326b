// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: enmetric/enmetric.go
// Summary: Formats counts with metric prefixes (K, M, G, ...).
// Usage: Tablet renderers use this for compact numeric summaries.

package enmetric

import (
	"errors"
	"fmt"
	"math"
)

// 10^21-1 encompasses 2^64-1, so K through Y suffices.
const prefixes = "KMGTPEZY"

var errBadBase = errors.New("enmetric: decimal and mult must be non-zero")

// Format scales val down by powers of mult (1000 for SI, 1024 for IEC)
// and renders it with the matching metric prefix and a two-digit
// fractional part. val is first divided by decimal, letting callers keep
// fixed-point inputs. When omitDec is true and the scaled value is
// exact, the fraction is dropped. A non-zero uprefix byte is appended
// after the metric prefix ('i' yields the IEC "Ki"/"Mi" forms).
func Format(val, decimal uint64, omitDec bool, mult uint64, uprefix byte) (string, error) {
	if decimal == 0 || mult == 0 {
		return "", errBadBase
	}
	dv := mult
	consumed := 0
	for val/decimal >= dv && consumed < len(prefixes) {
		dv *= mult
		consumed++
		if math.MaxUint64/dv < mult { // near overflow, can't scale dv again
			break
		}
	}
	var out string
	if dv != mult { // if consumed == 0, dv must equal mult
		if val/decimal/dv > 0 {
			consumed++
		} else {
			dv /= mult
		}
		val /= decimal
		// The remainder is val % dv, but we want a percentage as a scaled
		// integer. Dividing both sides by mult first keeps the scaling
		// from overflowing on large 64-bit values (dv need not be a
		// multiple of 10; it is not for 1024).
		if omitDec && val%dv == 0 {
			out = fmt.Sprintf("%d%c", val/dv, prefixes[consumed-1])
		} else {
			var remain uint64
			if dv == mult {
				remain = (val % dv) * 100 / dv
			} else {
				remain = ((val % dv) / mult * 100) / (dv / mult)
			}
			out = fmt.Sprintf("%d.%02d%c", val/dv, remain, prefixes[consumed-1])
		}
		if uprefix != 0 {
			out += string(rune(uprefix))
		}
	} else { // unscaled output, consumed == 0, dv == mult
		if omitDec && val%decimal == 0 {
			out = fmt.Sprintf("%d", val/decimal)
		} else {
			divider := uint64(10)
			if decimal > mult {
				divider = decimal / mult * 10
			}
			remain := (val % decimal) / divider
			out = fmt.Sprintf("%d.%02d", val/decimal, remain)
		}
	}
	return out, nil
}

// SI formats val with decimal prefixes: 1000 → "1.00K".
func SI(val uint64) string {
	s, _ := Format(val, 1, false, 1000, 0)
	return s
}

// IEC formats val with binary prefixes: 1024 → "1.00Ki".
func IEC(val uint64) string {
	s, _ := Format(val, 1, false, 1024, 'i')
	return s
}
