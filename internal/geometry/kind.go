package geometry

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported conic sections.
type Kind int

const (
	KindParabola Kind = iota + 1
	KindEllipse
	KindHyperbola
)

// Kinds lists every supported kind, in display order.
var Kinds = []Kind{KindParabola, KindEllipse, KindHyperbola}

func (k Kind) String() string {
	switch k {
	case KindParabola:
		return "parabola"
	case KindEllipse:
		return "ellipse"
	case KindHyperbola:
		return "hyperbola"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the kind named by s. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown conic kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindParabola, KindEllipse, KindHyperbola:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown conic kind %d", int(k))
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
