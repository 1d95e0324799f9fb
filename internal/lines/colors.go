package lines

import "github.com/jusunglee/bvg-go/internal/models"

// Only U-Bahn lines have colors so far
var colors = map[string]models.Color{
	"U1":  {Background: "#59ff00", Font: "#fff"},
	"U2":  {Background: "#ff3300", Font: "#fff"},
	"U3":  {Background: "#00ff66", Font: "#fff"},
	"U4":  {Background: "#ffe600", Font: "#000"},
	"U5":  {Background: "#664019", Font: "#fff"},
	"U55": {Background: "#664019", Font: "#fff"},
	"U6":  {Background: "#4d66ff", Font: "#fff"},
	"U7":  {Background: "#33ccff", Font: "#fff"},
	"U8":  {Background: "#0061da", Font: "#fff"},
	"U9":  {Background: "#ff7300", Font: "#fff"},
}

// ColorFor returns the color of a line by display name, or nil when unknown.
func ColorFor(name string) *models.Color {
	c, ok := colors[name]
	if !ok {
		return nil
	}
	return &c
}
