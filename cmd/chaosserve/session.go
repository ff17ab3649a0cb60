package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/coder/websocket"

	"github.com/stewi1014/chaosgame"
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/render"
	"github.com/stewi1014/chaosgame/transforms"
)

// command is one JSON message from the browser.
type command struct {
	Op string `json:"op"`

	// op "preset"
	Name string `json:"name,omitempty"`

	// op "steps"
	Steps int `json:"steps,omitempty"`

	// op "explore"
	Re         float64 `json:"re,omitempty"`
	Im         float64 `json:"im,omitempty"`
	Iterations int     `json:"iterations,omitempty"`

	// op "zoom"
	Factor float64 `json:"factor,omitempty"`

	// op "pan"
	Dx float64 `json:"dx,omitempty"`
	Dy float64 `json:"dy,omitempty"`
}

// status is sent as a text message after every command, mirroring the
// textual summary a UI shows next to the canvas.
type status struct {
	Mode       string  `json:"mode"`
	MinX       float64 `json:"minX"`
	MinY       float64 `json:"minY"`
	MaxX       float64 `json:"maxX"`
	MaxY       float64 `json:"maxY"`
	TotalSteps int     `json:"totalSteps,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// session owns one websocket connection and one game. Commands are handled
// on the read loop, so the game is never driven concurrently.
type session struct {
	conn   *websocket.Conn
	width  int
	height int

	// exactly one of the two is active
	chaos   *chaosgame.ChaosGame
	explore *chaosgame.ExploreGame
}

func newSession(conn *websocket.Conn, width, height int) (*session, error) {
	s := &session{
		conn:   conn,
		width:  width,
		height: height,
	}
	p, _ := chaosgame.LookupPreset("sierpinski")
	game, err := chaosgame.NewChaosGame(p.New(), width, height)
	if err != nil {
		return nil, err
	}
	s.chaos = game
	return s, nil
}

func (s *session) serve(ctx context.Context) error {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}

		var cmd command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.sendStatus(ctx, fmt.Errorf("bad command: %w", err))
			continue
		}

		cmdErr := s.handle(ctx, cmd)
		if err := s.sendFrame(ctx); err != nil {
			return err
		}
		if err := s.sendStatus(ctx, cmdErr); err != nil {
			return err
		}
	}
}

func (s *session) handle(ctx context.Context, cmd command) error {
	switch cmd.Op {
	case "preset":
		p, ok := chaosgame.LookupPreset(cmd.Name)
		if !ok {
			return fmt.Errorf("unknown preset %q", cmd.Name)
		}
		game, err := chaosgame.NewChaosGame(p.New(), s.width, s.height)
		if err != nil {
			return err
		}
		s.chaos, s.explore = game, nil
		return nil

	case "steps":
		if s.chaos == nil {
			return fmt.Errorf("steps only apply to chaos mode")
		}
		return s.chaos.RunSteps(ctx, cmd.Steps)

	case "explore":
		desc, err := chaosgame.NewDescription(
			linalg.Vector2D{X: -1.6, Y: -1},
			linalg.Vector2D{X: 1.6, Y: 1},
			[]transforms.Transform2D{
				transforms.ExploreJulia{C: linalg.Complex{Re: cmd.Re, Im: cmd.Im}},
			},
		)
		if err != nil {
			return err
		}
		opts := []chaosgame.ExploreOption{}
		if cmd.Iterations > 0 {
			opts = append(opts, chaosgame.WithIterations(cmd.Iterations))
		}
		game, err := chaosgame.NewExploreGame(desc, s.width, s.height, opts...)
		if err != nil {
			return err
		}
		s.explore, s.chaos = game, nil
		return s.explore.Render(ctx)

	case "zoom":
		if s.explore == nil {
			return fmt.Errorf("zoom only applies to explore mode")
		}
		s.explore.Zoom(cmd.Factor)
		s.explore.Canvas().Clear()
		return s.explore.Render(ctx)

	case "pan":
		if s.explore == nil {
			return fmt.Errorf("pan only applies to explore mode")
		}
		s.explore.Pan(cmd.Dx, cmd.Dy)
		s.explore.Canvas().Clear()
		return s.explore.Render(ctx)

	case "clear":
		s.canvas().Clear()
		return nil

	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
}

func (s *session) canvas() *chaosgame.Canvas {
	if s.chaos != nil {
		return s.chaos.Canvas()
	}
	return s.explore.Canvas()
}

func (s *session) description() *chaosgame.Description {
	if s.chaos != nil {
		return s.chaos.Description()
	}
	return s.explore.Description()
}

func (s *session) sendFrame(ctx context.Context) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, render.Grayscale(s.canvas())); err != nil {
		return err
	}
	return s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes())
}

func (s *session) sendStatus(ctx context.Context, cmdErr error) error {
	desc := s.description()
	st := status{
		Mode: "chaos",
		MinX: desc.MinCoords().X,
		MinY: desc.MinCoords().Y,
		MaxX: desc.MaxCoords().X,
		MaxY: desc.MaxCoords().Y,
	}
	if s.chaos != nil {
		st.TotalSteps = s.chaos.TotalSteps()
	} else {
		st.Mode = "explore"
	}
	if cmdErr != nil {
		st.Error = cmdErr.Error()
	}

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.conn.Write(ctx, websocket.MessageText, data)
}
