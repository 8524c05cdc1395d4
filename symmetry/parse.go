// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"unicode"

	"github.com/nets-lab/periodicnet/rational"
	"github.com/nets-lab/periodicnet/warn"
)

// tokenKind enumerates the lexeme classes of the equivalent-position grammar.
type tokenKind int

const (
	tokInt tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokSlash
	tokSep
	tokEnd
)

type token struct {
	kind tokenKind
	ival int64
	text string
}

// tokenize walks s into a token stream: integer literals, identifier
// runs, +, -, /, comma/semicolon separators, with whitespace ignored,
// terminated by an implicit end marker.
func tokenize(s string) ([]token, error) {
	toks := make([]token, 0, len(s)/2+1)
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash})
			i++
		case c == ',' || c == ';':
			toks = append(toks, token{kind: tokSep})
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			var v int64
			for _, d := range runes[i:j] {
				v = v*10 + int64(d-'0')
			}
			toks = append(toks, token{kind: tokInt, ival: v})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[i:j])})
			i = j
		default:
			return nil, fmt.Errorf("symmetry: unexpected character %q: %w", c, ErrSymmetryParse)
		}
	}
	toks = append(toks, token{kind: tokEnd})

	return toks, nil
}

// Parse runs a small state machine that turns an equivalent-position
// string such as "-x+1/2, y, z+1/4" into an EquivalentPosition under the
// given reference identifiers. warnFn receives a warning when a
// dimension's offset is written more than once; pass warn.NoOp() to
// silence it.
func Parse(s string, ids [3]string, warnFn warn.Func) (*EquivalentPosition, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	idIndex := func(text string) int {
		for i, id := range ids {
			if id == text {
				return i
			}
		}

		return -1
	}

	M := rational.ZeroMat3()
	T := rational.ZeroRat3()

	var (
		sign          int64 = 1
		pendingInt    *int64
		pendingVal    *rational.Rat
		numeratorRaw  int64
		awaitingDenom bool
		dim           int
		coeffWritten  [3]bool
		offsetWritten [3]bool
	)

	// finalizePendingInt collapses a bare integer literal (no trailing '/')
	// into a signed pending value, consuming the sign register.
	finalizePendingInt := func() {
		if pendingInt != nil && pendingVal == nil {
			v := rational.NewInt(*pendingInt)
			if sign < 0 {
				v = v.Neg()
			}
			pendingVal = v
			pendingInt = nil
			sign = 1
		}
	}

	flushOffset := func() error {
		if awaitingDenom {
			return fmt.Errorf("symmetry: incomplete fraction: %w", ErrSymmetryParse)
		}
		finalizePendingInt()
		if pendingVal != nil {
			if offsetWritten[dim] {
				warn.Emit(warnFn, "symmetry: dimension %d offset written more than once", dim)
			}
			T[dim] = T[dim].Add(pendingVal)
			offsetWritten[dim] = true
			pendingVal = nil
		}

		return nil
	}

	closeDimension := func() error {
		if err := flushOffset(); err != nil {
			return err
		}
		if !coeffWritten[dim] {
			return fmt.Errorf("symmetry: dimension %d has no coefficient: %w", dim, ErrSymmetryParse)
		}

		return nil
	}

	for _, tk := range toks {
		switch tk.kind {
		case tokInt:
			if awaitingDenom {
				if tk.ival == 0 {
					return nil, fmt.Errorf("symmetry: zero denominator: %w", ErrSymmetryParse)
				}
				v := rational.NewRat(numeratorRaw, tk.ival)
				if sign < 0 {
					v = v.Neg()
				}
				pendingVal = v
				awaitingDenom = false
				sign = 1
			} else {
				if pendingInt != nil || pendingVal != nil {
					return nil, fmt.Errorf("symmetry: unexpected number: %w", ErrSymmetryParse)
				}
				val := tk.ival
				pendingInt = &val
			}

		case tokIdent:
			idx := idIndex(tk.text)
			if idx < 0 {
				return nil, fmt.Errorf("symmetry: unknown identifier %q: %w", tk.text, ErrSymmetryParse)
			}
			var coeff *rational.Rat
			switch {
			case pendingVal != nil:
				coeff = pendingVal
			case pendingInt != nil:
				coeff = rational.NewInt(*pendingInt)
				if sign < 0 {
					coeff = coeff.Neg()
				}
			default:
				coeff = rational.One()
				if sign < 0 {
					coeff = coeff.Neg()
				}
			}
			M[dim][idx] = M[dim][idx].Add(coeff)
			pendingVal, pendingInt = nil, nil
			sign = 1
			coeffWritten[dim] = true

		case tokPlus, tokMinus:
			if pendingInt != nil || pendingVal != nil {
				if err := flushOffset(); err != nil {
					return nil, err
				}
			}
			if tk.kind == tokMinus {
				sign *= -1
			}

		case tokSlash:
			if pendingInt == nil || pendingVal != nil || awaitingDenom {
				return nil, fmt.Errorf("symmetry: '/' without a preceding integer: %w", ErrSymmetryParse)
			}
			numeratorRaw = *pendingInt
			pendingInt = nil
			awaitingDenom = true

		case tokSep:
			if err := closeDimension(); err != nil {
				return nil, err
			}
			dim++
			if dim > 2 {
				return nil, fmt.Errorf("symmetry: more than three dimensions declared: %w", ErrSymmetryParse)
			}

		case tokEnd:
			if dim != 2 {
				return nil, fmt.Errorf("symmetry: expected three dimensions, got %d: %w", dim+1, ErrSymmetryParse)
			}
			if err := closeDimension(); err != nil {
				return nil, err
			}
		}
	}

	return &EquivalentPosition{M: M, T: T}, nil
}
