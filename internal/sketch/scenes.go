package sketch

import (
	"image/color"

	"github.com/olivierh59500/vector-flow/internal/config"
	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/flow"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/glyph"
	"github.com/olivierh59500/vector-flow/internal/scene"
)

// buildFlow1 shows the sine lattice with particles streaming left to right.
func buildFlow1(b *builder, sc config.SceneConfig) *scene.Scene {
	s := b.newScene("flow1", field.New(field.SinX))
	b.plotterSetup(s, b.arrows(), sc)
	b.moverSetup(s, sc)

	restart := flow.PastX(10, func() geom.Point {
		return geom.Pt(-10, b.rng.Float64()*10-5)
	})
	s.OnFrame = func(s *scene.Scene, _ scene.FrameEvent) {
		flow.Respawn(s.Mover.Particles(), restart)
	}
	return s
}

// FollowRate is the initial bend of the cursor-following field, in degrees
// per unit of half distance.
const FollowRate = 60

// buildFlow2 bends every vector towards the cursor. Left and right keys
// change how tightly the flow spirals.
func buildFlow2(b *builder, sc config.SceneConfig) *scene.Scene {
	s := b.newScene("flow2", field.New(field.Identity))
	b.plotterSetup(s, b.arrows(), sc)
	b.moverSetup(s, sc)

	var (
		target   geom.Point
		rate     = float64(FollowRate)
		tracking bool
	)
	retarget := func(s *scene.Scene) {
		s.Field.SetBase(field.Follow(target, rate))
		s.Plotter.Calculate()
	}
	respawn := []flow.Respawner{
		flow.Window(geom.Square(15), flow.Near(b.rng, &target, 5)),
		flow.Stagnant(s.Field, 0.2, flow.Around(b.rng, &target, 9)),
	}

	s.OnMouseMove = func(s *scene.Scene, screen geom.Point) {
		target = s.Logical(screen)
		tracking = true
		retarget(s)
	}
	s.OnKeyDown = func(s *scene.Scene, key scene.Key) {
		switch key {
		case "right":
			rate++
		case "left":
			rate--
		default:
			return
		}
		if tracking {
			retarget(s)
		}
	}
	s.OnFrame = func(s *scene.Scene, _ scene.FrameEvent) {
		if tracking {
			flow.Respawn(s.Mover.Particles(), respawn...)
		}
	}
	return s
}

// buildSin animates a sine interference pattern on colour-coded dots.
func buildSin(b *builder, sc config.SceneConfig) *scene.Scene {
	s := b.newScene("sin", field.New(field.AnimSin(0)))
	s.Plotter.Normalize = false
	s.Plotter.Live = true
	b.plotterSetup(s, glyph.DotFactory(3, color.Black, glyph.HSLColorer(315)), sc)
	b.moverSetup(s, sc)

	s.OnFrame = func(s *scene.Scene, ev scene.FrameEvent) {
		s.Field.SetBase(field.AnimSin(ev.Time))
	}
	return s
}

// buildFlow3 drifts particles slowly through (y², x²) from the bottom-left
// corner.
func buildFlow3(b *builder, sc config.SceneConfig) *scene.Scene {
	s := b.newScene("flow3", field.New(field.Swirl))
	b.plotterSetup(s, b.arrows(), sc)
	b.moverSetup(s, sc)

	corner := geom.Pt(-15, -15)
	respawn := flow.Window(geom.Square(15), flow.Near(b.rng, &corner, 5))
	s.OnFrame = func(s *scene.Scene, _ scene.FrameEvent) {
		flow.Respawn(s.Mover.Particles(), respawn)
	}
	return s
}

// buildNoise steers particles through slowly evolving perlin noise.
func buildNoise(b *builder, sc config.SceneConfig) *scene.Scene {
	noise := field.NewNoise(b.seed, 0.15, 3, 0.2)
	s := b.newScene("noise", field.New(noise.At(0)))
	s.Plotter.Live = true
	b.plotterSetup(s, b.arrows(), sc)
	b.moverSetup(s, sc)

	var origin geom.Point
	respawn := flow.Window(geom.Square(gridSize/2+0.5), flow.Around(b.rng, &origin, spawnSize))
	s.OnFrame = func(s *scene.Scene, ev scene.FrameEvent) {
		s.Field.SetBase(noise.At(ev.Time))
		flow.Respawn(s.Mover.Particles(), respawn)
	}
	return s
}

// buildZones overrides an outward flow with a vortex, a sink and a steady
// wind in three regions.
func buildZones(b *builder, sc config.SceneConfig) *scene.Scene {
	f := field.New(field.Identity)
	f.AddZone(field.NewRectZone(geom.Pt(-8, 2), geom.Pt(-2, 8)), field.Vortex(geom.Pt(-5, 5), 1.2))
	f.AddZone(field.CircleZone{Center: geom.Pt(4, -4), Radius: 3.5}, field.Sink(geom.Pt(4, -4), 1.5))
	f.AddZone(field.NewPolygonZone(geom.Pt(-9, -9), geom.Pt(0, -9), geom.Pt(-9, 0)), field.Constant(geom.Pt(4, 1)))

	s := b.newScene("zones", f)
	b.plotterSetup(s, b.arrows(), sc)
	b.moverSetup(s, sc)

	var origin geom.Point
	respawn := []flow.Respawner{
		flow.Window(geom.Square(gridSize/2+0.5), flow.Around(b.rng, &origin, spawnSize)),
		flow.Stagnant(f, 0.2, flow.Around(b.rng, &origin, spawnSize)),
	}
	s.OnFrame = func(s *scene.Scene, _ scene.FrameEvent) {
		flow.Respawn(s.Mover.Particles(), respawn...)
	}
	return s
}
