// Package format renders Australian business identifiers, amounts, and email
// templates for display. Formatters degrade gracefully: input that does not
// match the expected digit count is returned unchanged.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)
var nonDialChars = regexp.MustCompile(`[^\d+]`)

var landlineAreaCodes = map[byte]bool{'2': true, '3': true, '7': true, '8': true}

// ABN formats an Australian Business Number as "XX XXX XXX XXX"
func ABN(abn string) string {
	digits := nonDigits.ReplaceAllString(abn, "")
	if len(digits) != 11 {
		return abn
	}
	return fmt.Sprintf("%s %s %s %s", digits[0:2], digits[2:5], digits[5:8], digits[8:])
}

// BSB formats a Bank-State-Branch code as "XXX-XXX"
func BSB(bsb string) string {
	digits := nonDigits.ReplaceAllString(bsb, "")
	if len(digits) != 6 {
		return bsb
	}
	return digits[0:3] + "-" + digits[3:]
}

// Phone formats an Australian phone number. Mobiles group as "04xx xxx xxx",
// landlines with area codes 02/03/07/08 as "0x xxxx xxxx"; +61 international
// forms keep the country code. Anything else passes through untouched.
func Phone(phone string) string {
	dial := nonDialChars.ReplaceAllString(phone, "")

	if strings.HasPrefix(dial, "+61") {
		national := dial[3:]
		if len(national) == 9 {
			if national[0] == '4' {
				return fmt.Sprintf("+61 %s %s %s", national[0:3], national[3:6], national[6:])
			}
			if landlineAreaCodes[national[0]] {
				return fmt.Sprintf("+61 %s %s %s", national[0:1], national[1:5], national[5:])
			}
		}
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) == 10 {
		if strings.HasPrefix(digits, "04") {
			return fmt.Sprintf("%s %s %s", digits[0:4], digits[4:7], digits[7:])
		}
		if digits[0] == '0' && landlineAreaCodes[digits[1]] {
			return fmt.Sprintf("%s %s %s", digits[0:2], digits[2:6], digits[6:])
		}
	}

	return phone
}

// Currency renders an amount as Australian dollars, e.g. "$1,234.56".
// Negative amounts render as "-$x.xx".
func Currency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	// Insert thousands separators
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	out := "$" + b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// Percentage renders a rate like "10%" with the requested decimal places
func Percentage(rate float64, decimals int) string {
	return strconv.FormatFloat(rate, 'f', decimals, 64) + "%"
}

// EmailTemplate replaces every {{key}} placeholder in the template with its
// value. Unknown placeholders are left in place.
func EmailTemplate(template string, variables map[string]string) string {
	formatted := template
	for key, value := range variables {
		formatted = strings.ReplaceAll(formatted, "{{"+key+"}}", value)
	}
	return formatted
}
