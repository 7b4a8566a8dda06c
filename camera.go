package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/robotButler/battlelines/common"
)

// Camera maps between world and screen space with pan and zoom.
type Camera struct {
	// X, Y is the world coordinate at the screen center.
	X, Y float64

	zoom    float64
	minZoom float64
	maxZoom float64
}

func NewCamera(x, y, minZoom, maxZoom float64) *Camera {
	return &Camera{X: x, Y: y, zoom: 1, minZoom: minZoom, maxZoom: maxZoom}
}

func (c *Camera) Zoom() float64 { return c.zoom }

// ZoomBy scales the zoom and clamps it to the configured range.
func (c *Camera) ZoomBy(factor float64) {
	c.zoom = common.Clamp(c.zoom*factor, c.minZoom, c.maxZoom)
}

// Pan moves the camera in screen pixels, so panning feels constant at any
// zoom level.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.zoom
	c.Y += dy / c.zoom
}

// ScreenToWorld converts a screen coordinate to world space.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := c.X + (float64(sx)-common.BaseWidth/2)/c.zoom
	wy := c.Y + (float64(sy)-common.BaseHeight/2)/c.zoom
	return wx, wy
}

// GeoM returns the world-to-screen transform for drawing.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.X, -c.Y)
	g.Scale(c.zoom, c.zoom)
	g.Translate(common.BaseWidth/2, common.BaseHeight/2)
	return g
}
