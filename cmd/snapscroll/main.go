package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ghetzel/cli"
	snapscroll "github.com/ghetzel/go-snapscroll"
	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-snapscroll/rules"
	"github.com/ghetzel/go-snapscroll/snap"
	"github.com/ghetzel/go-stockutil/log"
)

func main() {
	app := cli.NewApp()
	app.Name = `snapscroll`
	app.Usage = snapscroll.Slogan
	app.Version = snapscroll.Version
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `info`,
			EnvVar: `LOGLEVEL`,
		},
		cli.Float64Flag{
			Name:  `scroll-to, s`,
			Usage: `Simulated horizontal offset the scroll gesture ends at.`,
			Value: 250,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))
		return nil
	}

	app.Action = func(c *cli.Context) {
		scheduler := snap.NewManualScheduler()
		matcher := rules.NewStaticMatcher()

		engine := snapscroll.New(matcher)
		engine.Scheduler = scheduler
		engine.Attach()

		surface := geometry.NewElementSurface(geometry.NewBox(0, 0, 400, 300), 1000, 300)

		matcher.Add(rules.Match{
			ID:      `carousel`,
			Surface: surface,
			Declarations: rules.Declarations{
				`scroll-snap-type`: `x mandatory`,
			},
			Candidates: []rules.CandidateSpec{
				makeSlide(0),
				makeSlide(300),
				makeSlide(600),
			},
		})

		container := engine.Container(`carousel`)
		fmt.Print(container.TreeString())

		// simulate a user gesture: a burst of raw scroll events, then quiet
		target := c.Float64(`scroll-to`)

		for _, x := range []float64{target / 3, 2 * target / 3, target} {
			surface.SetOffset(geometry.AxisX, x)
			engine.OnScroll(`carousel`, surface.Offset())
			scheduler.Advance(10 * time.Millisecond)
		}

		scheduler.Advance(snap.QuietPeriod + snap.BaseDuration + snap.FrameInterval)

		fmt.Printf(
			"gesture ended at x=%v; settled on candidate %v at %v\n",
			target,
			color.GreenString(fmt.Sprintf("#%d", container.Index())),
			color.YellowString(container.Surface.Offset().String()),
		)
	}

	app.Run(os.Args)
}

func makeSlide(x float64) rules.CandidateSpec {
	return rules.CandidateSpec{
		Region: geometry.NewBox(x, 0, 300, 300),
		Declarations: rules.Declarations{
			`scroll-snap-align`: `start`,
		},
	}
}
