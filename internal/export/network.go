package export

import (
	"bufio"
	"fmt"
	"io"
)

// Interaction is one directed edge of an interaction network.
type Interaction struct {
	Source string
	Type   string
	Target string
}

// Network is a deduplicated interaction network built from result rows and
// written out as SIF interchange text.
type Network struct {
	interactions []Interaction
	seen         map[Interaction]struct{}
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{seen: make(map[Interaction]struct{})}
}

// Add records an interaction unless an identical one was already added.
// Returns true when the interaction is new.
func (n *Network) Add(source, interactionType, target string) bool {
	in := Interaction{Source: source, Type: interactionType, Target: target}
	if _, dup := n.seen[in]; dup {
		return false
	}
	n.seen[in] = struct{}{}
	n.interactions = append(n.interactions, in)
	return true
}

// Size returns the number of distinct interactions.
func (n *Network) Size() int {
	return len(n.interactions)
}

// WriteSIF writes the network in cytoscape SIF format, one
// source/type/target line per interaction, in insertion order.
func (n *Network) WriteSIF(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, in := range n.interactions {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", in.Source, in.Type, in.Target); err != nil {
			return err
		}
	}
	return bw.Flush()
}
