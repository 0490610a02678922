package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"smir/internal/mir"
	"smir/internal/ty"
)

var placeParser = participle.MustBuild[Place](
	participle.Lexer(PlaceLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(3),
)

// ParsePlace parses a place expression into its structural form. Field
// steps carry no recorded type; computing the type of a parsed place works
// wherever the base type determines the step (tuples, derefs, indexing).
func ParsePlace(input string) (mir.Place, error) {
	parsed, err := placeParser.ParseString("", input)
	if err != nil {
		return mir.Place{}, err
	}
	return parsed.toPlace()
}

func (p *Place) toPlace() (mir.Place, error) {
	place, err := p.Primary.toPlace()
	if err != nil {
		return mir.Place{}, err
	}
	for _, suffix := range p.Suffixes {
		elem, err := suffix.toElem()
		if err != nil {
			return mir.Place{}, err
		}
		place.Projection = append(place.Projection, elem)
	}
	return place, nil
}

func (p *Primary) toPlace() (mir.Place, error) {
	switch {
	case p.Local != "":
		local, err := parseLocal(p.Local)
		if err != nil {
			return mir.Place{}, err
		}
		return mir.Place{Local: local}, nil
	case p.Deref != nil:
		place, err := p.Deref.toPlace()
		if err != nil {
			return mir.Place{}, err
		}
		place.Projection = append(place.Projection, &mir.DerefElem{})
		return place, nil
	case p.Downcast != nil:
		place, err := p.Downcast.Place.toPlace()
		if err != nil {
			return mir.Place{}, err
		}
		variant, err := strconv.Atoi(p.Downcast.Variant)
		if err != nil {
			return mir.Place{}, fmt.Errorf("bad variant index %q: %w", p.Downcast.Variant, err)
		}
		place.Projection = append(place.Projection, &mir.DowncastElem{Variant: ty.VariantIdx(variant)})
		return place, nil
	default:
		return mir.Place{}, fmt.Errorf("empty place expression")
	}
}

func (s *Suffix) toElem() (mir.ProjectionElem, error) {
	if s.Field != "" {
		field, err := strconv.Atoi(s.Field)
		if err != nil {
			return nil, fmt.Errorf("bad field index %q: %w", s.Field, err)
		}
		return &mir.FieldElem{Field: field}, nil
	}
	local, err := parseLocal(s.Index)
	if err != nil {
		return nil, err
	}
	return &mir.IndexElem{Local: local}, nil
}

func parseLocal(tok string) (mir.Local, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(tok, "_"))
	if err != nil {
		return 0, fmt.Errorf("bad local %q: %w", tok, err)
	}
	return mir.Local(n), nil
}
