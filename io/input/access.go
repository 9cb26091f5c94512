// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"golang.org/x/exp/slices"

	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/key"
)

// An access key (mnemonic) directly activates a widget: with Alt held,
// or always on layers with alt bypass, pressing the key grants the
// registered widget navigation focus and sends it an activate command.
//
// Keys register in layers. The base layer belongs to the window root;
// a popup parent may add a layer over it so the popup's keys are only
// active while the popup is open.
type accessLayer struct {
	owner     id.ID
	altBypass bool
	keys      map[key.Name]id.ID
}

// NewAccessLayer adds an access key layer owned by the widget. Keys
// registered by descendants of the owner land in this layer. Call
// during configure, before descendants register keys.
//
// With altBypass, the layer's keys are active even without Alt held.
func (s *State) NewAccessLayer(owner id.ID, altBypass bool) {
	i, ok := slices.BinarySearchFunc(s.accessLayers, owner, func(l accessLayer, target id.ID) int {
		return id.Compare(l.owner, target)
	})
	if ok {
		s.accessLayers[i].altBypass = altBypass
		return
	}
	layer := accessLayer{owner: owner, altBypass: altBypass, keys: make(map[key.Name]id.ID)}
	s.accessLayers = slices.Insert(s.accessLayers, i, layer)
}

// layerFor returns the layer with the longest owner path which is an
// ancestor of target.
func (s *State) layerFor(target id.ID) *accessLayer {
	for i := len(s.accessLayers) - 1; i >= 0; i-- {
		l := &s.accessLayers[i]
		if id.Compare(l.owner, target) <= 0 && l.owner.IsAncestorOf(target) {
			return l
		}
	}
	return nil
}

// EnableAltBypass enables or disables alt bypass for the layer
// containing the widget's access keys.
func (s *State) EnableAltBypass(target id.ID, bypass bool) {
	if l := s.layerFor(target); l != nil {
		l.altBypass = bypass
	}
}

// AddAccessKey registers the widget as handler of an access key, in
// the nearest enclosing layer. The first registration of a key in a
// layer wins. Call during configure.
func (s *State) AddAccessKey(target id.ID, name key.Name) {
	l := s.layerFor(target)
	if l == nil {
		return
	}
	if _, exists := l.keys[name]; !exists {
		l.keys[name] = target
	}
}

// accessKeyTarget looks up an access key, topmost popup layers first,
// honoring the Alt-or-bypass rule.
func (s *State) accessKeyTarget(name key.Name) (id.ID, bool) {
	alt := s.modifiers == key.ModAlt
	plain := s.modifiers == 0

	check := func(owner id.ID) (id.ID, bool) {
		i, ok := slices.BinarySearchFunc(s.accessLayers, owner, func(l accessLayer, target id.ID) int {
			return id.Compare(l.owner, target)
		})
		if !ok {
			return id.ID{}, false
		}
		l := &s.accessLayers[i]
		if alt || (l.altBypass && plain) {
			target, found := l.keys[name]
			return target, found
		}
		return id.ID{}, false
	}

	for i := len(s.popups) - 1; i >= 0; i-- {
		if target, ok := check(s.popups[i].desc.ID); ok {
			return target, true
		}
	}
	return check(id.Root)
}

// ClearAccessLayers drops all layers and keys, before a reconfigure
// of the tree re-registers them. The base layer remains.
func (s *State) ClearAccessLayers() {
	s.accessLayers = s.accessLayers[:0]
	s.accessLayers = append(s.accessLayers, accessLayer{
		owner: id.Root,
		keys:  make(map[key.Name]id.ID),
	})
}
