package ota

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

var (
	ErrNoRootElement      = errors.New("no element found")
	ErrContentOutsideRoot = errors.New("junk outside document element")
)

// node keeps what lookups need. text is the character data before the first child element.
type node struct {
	name     string
	attrs    []xml.Attr
	text     []byte
	children []*node
}

func (n *node) attr(name string) *string {
	for _, attr := range n.attrs {
		if attr.Name.Local == name {
			value := attr.Value
			return &value
		}
	}

	return nil
}

func (n *node) descendants(name string, found []*node) []*node {
	for _, child := range n.children {
		if child.name == name {
			found = append(found, child)
		}
		found = child.descendants(name, found)
	}

	return found
}

func (n *node) walk(path []string) *node {
	if len(path) == 0 {
		return n
	}

	for _, child := range n.children {
		if child.name != path[0] {
			continue
		}
		if match := child.walk(path[1:]); match != nil {
			return match
		}
	}

	return nil
}

// find returns the first element matching .//path[0]/path[1]/... in document order.
func (n *node) find(path ...string) *node {
	for _, candidate := range n.descendants(path[0], nil) {
		if match := candidate.walk(path[1:]); match != nil {
			return match
		}
	}

	return nil
}

func (n *node) findText(path ...string) *string {
	match := n.find(path...)
	if match == nil {
		return nil
	}

	text := string(match.text)
	return &text
}

func readTree(decoder *xml.Decoder) (*node, error) {
	var root *node
	var stack []*node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, ErrContentOutsideRoot
			}

			element := &node{name: t.Name.Local, attrs: t.Copy().Attr}
			if len(stack) == 0 {
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, element)
			}
			stack = append(stack, element)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, ErrContentOutsideRoot
				}
				continue
			}

			current := stack[len(stack)-1]
			if len(current.children) == 0 {
				current.text = append(current.text, t...)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRootElement
	}

	return root, nil
}

// Decode reads a whole document. Anything but whitespace, comments, processing instructions
// and directives outside the root element is an error.
func Decode(r io.Reader) (AvailRQ, error) {
	root, err := readTree(xml.NewDecoder(r))
	if err != nil {
		return AvailRQ{}, err
	}

	return fromTree(root), nil
}
