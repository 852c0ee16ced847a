package wnfa

import (
	"fmt"
	"regexp/syntax"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// maxRune is the upper bound for "any character" ranges; the alphabet
// permits Unicode code points up to 21 bits (spec.md §3), which utf8.MaxRune
// already covers.
const maxRune = utf8.MaxRune

// Builder accumulates weighted patterns into a not-yet-frozen automaton.
// Use New to create one, AddWeightedRegex to register patterns, and Freeze
// to obtain an immutable NFA.
type Builder struct {
	states  []*nfaState
	start   StateID
	frozen  bool

	// byPattern caches the final raw state reached by a literal pattern
	// string already registered through this builder, so a repeated
	// AddWeightedRegex call for the same pattern (under a different
	// measure_id) lands on the same final state instead of minting an
	// independent, structurally-identical fragment. This is what makes
	// the "one weight, one use" duplicate-measure guard (spec.md §9)
	// observable at AddWeightedRegex time: a literal repeat under the
	// same measure_id hits the guard on this shared state.
	byPattern map[string]StateID
}

// New creates an empty Builder with a single initial state.
func New() *Builder {
	b := &Builder{byPattern: make(map[string]StateID)}
	b.start = b.newState()
	return b
}

func (b *Builder) newState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, &nfaState{id: id, measureSeen: make(map[string]bool)})
	return id
}

func (b *Builder) state(id StateID) *nfaState { return b.states[id] }

func (b *Builder) addEpsilon(from, to StateID) {
	b.state(from).epsilon = append(b.state(from).epsilon, to)
}

func (b *Builder) addRange(from, to StateID, lo, hi rune) {
	b.state(from).transitions = append(b.state(from).transitions, transition{lo: lo, hi: hi, target: to})
}

// fragment is a Thompson sub-automaton under construction: every path from
// start to accept represents one way to match the corresponding AST node.
type fragment struct {
	start, accept StateID
}

// AddWeightedRegex anchors pattern to the end of the input (appending the
// implicit ".*" suffix unless pattern already ends in an unescaped "$"),
// compiles it via Thompson's construction over the parsed regexp/syntax
// AST, and records weight under measureID at the newly created final
// state. Fails with ErrInvalidPattern if the pattern cannot be parsed, or
// ErrFrozenNFA if the builder has already been frozen.
func (b *Builder) AddWeightedRegex(measureID, pattern string, weight decimal.Decimal) error {
	if b.frozen {
		return ErrFrozenNFA
	}

	finalID, cached := b.byPattern[pattern]
	if !cached {
		explicitlyAnchored, core := splitTrailingEndAnchor(pattern)

		ast, err := syntax.Parse(core, syntax.Perl)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		ast = ast.Simplify()

		frag, err := b.compile(ast)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}

		finalID = frag.accept
		if !explicitlyAnchored {
			suffix, err := syntax.Parse(".*", syntax.Perl)
			if err != nil {
				return fmt.Errorf("%w: internal suffix: %v", ErrInvalidPattern, err)
			}
			suffixFrag, err := b.compile(suffix)
			if err != nil {
				return fmt.Errorf("%w: internal suffix: %v", ErrInvalidPattern, err)
			}
			b.addEpsilon(frag.accept, suffixFrag.start)
			finalID = suffixFrag.accept
		}
		b.addEpsilon(b.start, frag.start)
		b.byPattern[pattern] = finalID
	}

	final := b.state(finalID)
	if final.measureSeen[measureID] {
		return fmt.Errorf("%w: measure %q", ErrDuplicateMeasure, measureID)
	}
	final.isFinal = true
	final.measureSeen[measureID] = true
	final.regexWeights = append(final.regexWeights, WeightedRegex{
		MeasureID:  measureID,
		RawPattern: pattern,
		Weight:     weight,
	})

	return nil
}

// splitTrailingEndAnchor reports whether pattern ends in an unescaped "$"
// and, if so, returns the pattern with that anchor stripped (our
// whole-string-consumption evaluation semantics already enforce the
// end-anchor, so the literal "$" need not survive into the parsed AST).
func splitTrailingEndAnchor(pattern string) (anchored bool, core string) {
	if !strings.HasSuffix(pattern, "$") {
		return false, pattern
	}
	// count trailing backslashes immediately before the "$" to determine
	// whether it is escaped.
	backslashes := 0
	for i := len(pattern) - 2; i >= 0 && pattern[i] == '\\'; i-- {
		backslashes++
	}
	if backslashes%2 == 1 {
		return false, pattern // "$" is escaped, matches a literal dollar
	}
	return true, pattern[:len(pattern)-1]
}

// compile walks the regexp/syntax AST and builds the corresponding
// Thompson fragment. Begin-of-string assertions are no-ops: this
// automaton always starts matching at the true beginning of the word, so
// "^"/\A is unconditionally satisfied. A "$"/\z encountered mid-pattern
// (not as the registered pattern's trailing anchor, already stripped by
// the caller) is likewise treated as an always-true assertion — full
// end-anchoring for the whole registered pattern is guaranteed instead by
// Evaluate only accepting once the entire input is consumed.
func (b *Builder) compile(re *syntax.Regexp) (fragment, error) {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		s := b.newState()
		return fragment{start: s, accept: s}, nil

	case syntax.OpLiteral:
		start := b.newState()
		cur := start
		for _, r := range re.Rune {
			next := b.newState()
			if re.Flags&syntax.FoldCase != 0 {
				lo, hi := foldPair(r)
				b.addRange(cur, next, lo, hi)
				if lo2, hi2, ok := foldSecondary(r); ok {
					b.addRange(cur, next, lo2, hi2)
				}
			} else {
				b.addRange(cur, next, r, r)
			}
			cur = next
		}
		return fragment{start: start, accept: cur}, nil

	case syntax.OpCharClass:
		start, accept := b.newState(), b.newState()
		for i := 0; i+1 < len(re.Rune); i += 2 {
			b.addRange(start, accept, re.Rune[i], re.Rune[i+1])
		}
		return fragment{start: start, accept: accept}, nil

	case syntax.OpAnyChar:
		start, accept := b.newState(), b.newState()
		b.addRange(start, accept, 0, maxRune)
		return fragment{start: start, accept: accept}, nil

	case syntax.OpAnyCharNotNL:
		start, accept := b.newState(), b.newState()
		b.addRange(start, accept, 0, '\n'-1)
		b.addRange(start, accept, '\n'+1, maxRune)
		return fragment{start: start, accept: accept}, nil

	case syntax.OpCapture:
		return b.compile(re.Sub0[0])

	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			s := b.newState()
			return fragment{start: s, accept: s}, nil
		}
		first, err := b.compile(re.Sub[0])
		if err != nil {
			return fragment{}, err
		}
		cur := first
		for _, sub := range re.Sub[1:] {
			next, err := b.compile(sub)
			if err != nil {
				return fragment{}, err
			}
			b.addEpsilon(cur.accept, next.start)
			cur = fragment{start: cur.start, accept: next.accept}
		}
		return cur, nil

	case syntax.OpAlternate:
		start, accept := b.newState(), b.newState()
		for _, sub := range re.Sub {
			frag, err := b.compile(sub)
			if err != nil {
				return fragment{}, err
			}
			b.addEpsilon(start, frag.start)
			b.addEpsilon(frag.accept, accept)
		}
		return fragment{start: start, accept: accept}, nil

	case syntax.OpStar:
		inner, err := b.compile(re.Sub0[0])
		if err != nil {
			return fragment{}, err
		}
		start, accept := b.newState(), b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(inner.accept, inner.start)
		b.addEpsilon(inner.accept, accept)
		b.addEpsilon(start, accept)
		return fragment{start: start, accept: accept}, nil

	case syntax.OpPlus:
		inner, err := b.compile(re.Sub0[0])
		if err != nil {
			return fragment{}, err
		}
		accept := b.newState()
		b.addEpsilon(inner.accept, inner.start)
		b.addEpsilon(inner.accept, accept)
		return fragment{start: inner.start, accept: accept}, nil

	case syntax.OpQuest:
		inner, err := b.compile(re.Sub0[0])
		if err != nil {
			return fragment{}, err
		}
		start, accept := b.newState(), b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(inner.accept, accept)
		b.addEpsilon(start, accept)
		return fragment{start: start, accept: accept}, nil

	case syntax.OpRepeat:
		return b.compileRepeat(re)

	case syntax.OpNoMatch:
		start, accept := b.newState(), b.newState()
		return fragment{start: start, accept: accept}, nil // no edge: unreachable accept

	default:
		return fragment{}, fmt.Errorf("wnfa: unsupported regex construct (op=%v)", re.Op)
	}
}

// compileRepeat expands {min,max} into min mandatory copies followed by
// either (max-min) optional copies, or, when max is unbounded (-1), a
// trailing Star of one more copy.
func (b *Builder) compileRepeat(re *syntax.Regexp) (fragment, error) {
	sub := re.Sub0[0]
	start := b.newState()
	cur := fragment{start: start, accept: start}
	link := func(next fragment) {
		b.addEpsilon(cur.accept, next.start)
		cur = fragment{start: cur.start, accept: next.accept}
	}

	for i := 0; i < re.Min; i++ {
		frag, err := b.compile(sub)
		if err != nil {
			return fragment{}, err
		}
		link(frag)
	}

	switch {
	case re.Max == -1:
		frag, err := b.compile(sub)
		if err != nil {
			return fragment{}, err
		}
		starStart, starAccept := b.newState(), b.newState()
		b.addEpsilon(starStart, frag.start)
		b.addEpsilon(frag.accept, frag.start)
		b.addEpsilon(frag.accept, starAccept)
		b.addEpsilon(starStart, starAccept)
		link(fragment{start: starStart, accept: starAccept})
	case re.Max > re.Min:
		for i := re.Min; i < re.Max; i++ {
			frag, err := b.compile(sub)
			if err != nil {
				return fragment{}, err
			}
			qStart, qAccept := b.newState(), b.newState()
			b.addEpsilon(qStart, frag.start)
			b.addEpsilon(frag.accept, qAccept)
			b.addEpsilon(qStart, qAccept)
			link(fragment{start: qStart, accept: qAccept})
		}
	}

	return cur, nil
}

// foldPair and foldSecondary provide a minimal ASCII case-fold for literal
// runes compiled under the (?i) flag; full Unicode case folding is out of
// scope for the measure-agnostic patterns this package classifies.
func foldPair(r rune) (lo, hi rune) { return r, r }

func foldSecondary(r rune) (lo, hi rune, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 32, r - 32, true
	case r >= 'A' && r <= 'Z':
		return r + 32, r + 32, true
	default:
		return 0, 0, false
	}
}
