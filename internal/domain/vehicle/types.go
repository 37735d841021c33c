package vehicle

import "strings"

// Kind discriminates the vehicle variants.
type Kind string

const (
	KindCar  Kind = "CAR"
	KindBike Kind = "BIKE"
	KindVan  Kind = "VAN"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCar, KindBike, KindVan:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
