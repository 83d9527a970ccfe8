package dispatch

import (
	"fmt"

	"github.com/andaru/arxml/model"
)

// Category selects the container parser configuration for a container
// element. Categories differ only in the bucket their records are filed
// into.
type Category int

const (
	CategoryISignal Category = iota + 1
	CategorySystemSignal
	CategoryCompuMethod
	CategoryIPdu
	CategoryFrame
	CategoryPhysicalChannel
)

var categories = []struct {
	c      Category
	tag    string
	bucket model.BucketName
}{
	{CategoryISignal, "I-SIGNAL", model.Signals},
	{CategorySystemSignal, "SYSTEM-SIGNAL", model.Signals},
	{CategoryCompuMethod, "COMPU-METHOD", model.CompuMethods},
	{CategoryIPdu, "SIGNAL-I-PDU", model.PDUs},
	{CategoryFrame, "FRAME", model.Frames},
	{CategoryPhysicalChannel, "PHYSICAL-CHANNEL", model.Networks},
}

// Categories returns all container categories
func Categories() []Category {
	cs := make([]Category, 0, len(categories))
	for _, c := range categories {
		cs = append(cs, c.c)
	}
	return cs
}

// Bucket returns the document bucket records of this category are filed into.
func (c Category) Bucket() model.BucketName {
	for _, it := range categories {
		if it.c == c {
			return it.bucket
		}
	}
	return ""
}

// String returns the element local name of the category's container.
func (c Category) String() string {
	for _, it := range categories {
		if it.c == c {
			return it.tag
		}
	}
	return fmt.Sprintf("Category(%d)", int(c))
}
