package transformation

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a transformation from text. Accepted forms:
//
//	Transformation([1, 2, 0])
//	[1, 2, 0]
//	1 2 0
//	1,2,0
//
// The empty list "[]" is the transformation of degree 0.
func Parse(s string) (Transformation, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "Transformation(") {
		if !strings.HasSuffix(body, ")") {
			return Transformation{}, fmt.Errorf("%w: unbalanced parenthesis in %q", ErrSyntax, s)
		}
		body = strings.TrimSpace(body[len("Transformation(") : len(body)-1])
	}
	if strings.HasPrefix(body, "[") {
		if !strings.HasSuffix(body, "]") {
			return Transformation{}, fmt.Errorf("%w: unbalanced bracket in %q", ErrSyntax, s)
		}
		body = body[1 : len(body)-1]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	images := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Transformation{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, f)
		}
		images = append(images, v)
	}

	return New(images)
}

// MustParse is Parse that panics on error.
func MustParse(s string) Transformation {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (t Transformation) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (t *Transformation) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
