package framestack

import "image"

type shapeTally struct {
	shape Shape
	count int
}

// Reconcile selects the reference shape for a frame sequence and drops every
// frame that does not match it, preserving the original frame order. The
// reference shape is the most frequent shape; when two shapes tie on count,
// the one observed first in frame order wins. The tally is kept as an
// insertion-ordered slice rather than a map so that the tie-break does not
// depend on map iteration order.
func Reconcile(frames []*image.Gray) (Shape, []*image.Gray, error) {
	if len(frames) == 0 {
		return Shape{}, nil, ErrEmptyInput
	}

	tally := make([]shapeTally, 0, 4)
	for _, frame := range frames {
		shape := ShapeOf(frame)

		found := false
		for i := range tally {
			if tally[i].shape == shape {
				tally[i].count++
				found = true
				break
			}
		}
		if !found {
			tally = append(tally, shapeTally{shape: shape, count: 1})
		}
	}

	reference := tally[0]
	for _, t := range tally[1:] {
		if t.count > reference.count {
			reference = t
		}
	}

	kept := make([]*image.Gray, 0, reference.count)
	for _, frame := range frames {
		if ShapeOf(frame) == reference.shape {
			kept = append(kept, frame)
		}
	}

	return reference.shape, kept, nil
}
