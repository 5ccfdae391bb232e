// Package export writes coefficient tables in formats other than data files.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
	"text/template"
)

const (
	// HeaderExtension is the file extension of generated C headers.
	HeaderExtension = ".h"

	// Byte alignment requested for the coefficient arrays
	headerAlignment = 8
)

// Export errors.
var (
	ErrInvalidIdentifier = errors.New("table name is not a valid C identifier")
	ErrCoefRange         = errors.New("coefficient does not fit in int32")
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Header describes one coefficient table rendered as a C header.
type Header struct {
	Name   string
	Cutoff float64

	// Coefs holds the table in natural order.
	Coefs []int64

	// XS3 holds the same table in xs3 order. It is omitted when empty.
	XS3 []int64
}

type headerData struct {
	Name      string
	Guard     string
	Macro     string
	Taps      int
	Cutoff    float64
	Alignment int
	Coefs     []int64
	XS3       []int64
}

var headerTemplate = template.Must(template.New("header").Parse(`/*********************************/
/* AUTOGENERATED. DO NOT MODIFY! */
/*********************************/

// Blackman-windowed sinc low-pass, {{.Taps}} taps, normalized cutoff {{printf "%.10g" .Cutoff}}
// q32 fixed point: coefficients sum to approximately 2^32

#ifndef {{.Guard}}
#define {{.Guard}}

#include <stdint.h>

#ifndef ALIGNMENT
#  ifdef __xcore__
#    define ALIGNMENT(N)  __attribute__((aligned (N)))
#  else
#    define ALIGNMENT(N)
#  endif
#endif

#define {{.Macro}}_NUM_TAPS ({{.Taps}})

static const int32_t {{.Name}}_coefs[{{.Macro}}_NUM_TAPS] ALIGNMENT({{.Alignment}}) = {
{{- range .Coefs}}
    {{.}},
{{- end}}
};
{{- if .XS3}}

static const int32_t {{.Name}}_coefs_xs3[{{.Macro}}_NUM_TAPS] ALIGNMENT({{.Alignment}}) = {
{{- range .XS3}}
    {{.}},
{{- end}}
};
{{- end}}

#endif // {{.Guard}}
`))

// WriteHeader renders h as a C header.
func WriteHeader(w io.Writer, h Header) error {
	if !identPattern.MatchString(h.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, h.Name)
	}
	if err := checkInt32(h.Coefs); err != nil {
		return err
	}
	if len(h.XS3) > 0 {
		if len(h.XS3) != len(h.Coefs) {
			return fmt.Errorf("xs3 table has %d coefficients, want %d", len(h.XS3), len(h.Coefs))
		}
		if err := checkInt32(h.XS3); err != nil {
			return err
		}
	}

	macro := strings.ToUpper(h.Name)
	data := headerData{
		Name:      h.Name,
		Guard:     "_" + macro + "_COEFS_H_",
		Macro:     macro,
		Taps:      len(h.Coefs),
		Cutoff:    h.Cutoff,
		Alignment: headerAlignment,
		Coefs:     h.Coefs,
		XS3:       h.XS3,
	}
	return headerTemplate.Execute(w, data)
}

func checkInt32(coefs []int64) error {
	for i, c := range coefs {
		if c < math.MinInt32 || c > math.MaxInt32 {
			return fmt.Errorf("%w: index %d value %d", ErrCoefRange, i, c)
		}
	}
	return nil
}
