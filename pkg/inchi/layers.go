package inchi

import (
	"fmt"
	"regexp"
)

// Layers holds the raw text of each layer of an InChI string.
type Layers struct {
	Version     string
	Formula     string
	Connections string
	Hydrogens   string

	// Layers below are recognised but do not affect the graph.
	Charge                string
	Protons               string
	StereoDbond           string
	StereoSP3             string
	StereoSP3Inverted     string
	StereoType            string
	IsotopicAtoms         string
	IsotopicExchangeableH string
}

var layerPattern = regexp.MustCompile(`^InChI=(?P<version>[^/]*)/(?P<formula>[^/]*)` +
	`(?:/c(?P<connections>[^/]*))?` +
	`(?:/h(?P<hAtoms>[^/]*))?` +
	`(?:/q(?P<charge>[^/]*))?` +
	`(?:/p(?P<protons>[^/]*))?` +
	`(?:/b(?P<stereoDbond>[^/]*))?` +
	`(?:/t(?P<stereoSP3>[^/]*))?` +
	`(?:/m(?P<stereoSP3inverted>[^/]*))?` +
	`(?:/s(?P<stereoType>\d))?` +
	`(?:/i(?P<isotopicAtoms>[^/]*))?` +
	`(?:/h(?P<isotopicExchangeableH>[^/]*))?$`)

// SplitLayers cuts an InChI string into its layers.
func SplitLayers(s string) (*Layers, error) {
	res := layerPattern.FindStringSubmatch(s)
	if res == nil {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	named := make(map[string]string)
	for i, name := range layerPattern.SubexpNames() {
		if i != 0 {
			named[name] = res[i]
		}
	}

	return &Layers{
		Version:               named["version"],
		Formula:               named["formula"],
		Connections:           named["connections"],
		Hydrogens:             named["hAtoms"],
		Charge:                named["charge"],
		Protons:               named["protons"],
		StereoDbond:           named["stereoDbond"],
		StereoSP3:             named["stereoSP3"],
		StereoSP3Inverted:     named["stereoSP3inverted"],
		StereoType:            named["stereoType"],
		IsotopicAtoms:         named["isotopicAtoms"],
		IsotopicExchangeableH: named["isotopicExchangeableH"],
	}, nil
}
