package winged

import "fmt"

// OptionalIndex is an entity index that may be absent.
type OptionalIndex struct {
	Index uint32
	Valid bool
}

// None is the absent index.
var None = OptionalIndex{}

func Some(index uint32) OptionalIndex {
	return OptionalIndex{Index: index, Valid: true}
}

func (o OptionalIndex) String() string {
	if !o.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", o.Index)
}

// IndexOf returns the optional index of an entity; nil maps to None.
func IndexOf[E interface {
	comparable
	Index() uint32
}](entity E) OptionalIndex {
	var zero E
	if entity == zero {
		return None
	}
	return Some(entity.Index())
}
