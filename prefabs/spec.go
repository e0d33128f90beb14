package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type TransformSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type StaminaSpec struct {
	Max             float64 `yaml:"max"`
	RunCost         float64 `yaml:"run_cost"`
	RefreshTime     float64 `yaml:"refresh_time"`
	MaxTiredTime    float64 `yaml:"max_tired_time"`
	TiredGain       float64 `yaml:"tired_gain"`
	RegenMultiplier float64 `yaml:"regen_multiplier"`
	LowThreshold    float64 `yaml:"low_threshold"`
	BreathingCue    string  `yaml:"breathing_cue"`
	FeedbackScript  string  `yaml:"feedback_script"`
}

type MovementSpec struct {
	WalkCue       string `yaml:"walk_cue"`
	RunCue        string `yaml:"run_cue"`
	AnimationFlag string `yaml:"animation_flag"`
}

type FlashlightSpec struct {
	Speed     float64 `yaml:"speed"`
	Amplitude float64 `yaml:"amplitude"`
}

type PlayerSpec struct {
	Name            string         `yaml:"name"`
	BaseSpeed       float64        `yaml:"base_speed"`
	RunMultiplier   float64        `yaml:"run_multiplier"`
	GravityBias     *float64       `yaml:"gravity_bias"`
	LookSensitivity float64        `yaml:"look_sensitivity"`
	Radius          float64        `yaml:"radius"`
	Stamina         StaminaSpec    `yaml:"stamina"`
	Movement        MovementSpec   `yaml:"movement"`
	Flashlight      FlashlightSpec `yaml:"flashlight"`
	Audio           []AudioSpec    `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects tunings the stamina and movement machines cannot run
// with. Missing audio cues are checked when the cues are loaded.
func (s *PlayerSpec) Validate() error {
	switch {
	case s.BaseSpeed <= 0:
		return fmt.Errorf("%w: player base_speed must be positive", ErrInvalidSpec)
	case s.RunMultiplier <= 0 || s.RunMultiplier == 1:
		return fmt.Errorf("%w: player run_multiplier must be positive and not 1", ErrInvalidSpec)
	case s.Stamina.Max <= 0:
		return fmt.Errorf("%w: stamina max must be positive", ErrInvalidSpec)
	case s.Stamina.RunCost < 0 || s.Stamina.TiredGain < 0 || s.Stamina.RegenMultiplier < 0:
		return fmt.Errorf("%w: stamina rates must not be negative", ErrInvalidSpec)
	case s.Stamina.RefreshTime < 0 || s.Stamina.MaxTiredTime < 0:
		return fmt.Errorf("%w: stamina times must not be negative", ErrInvalidSpec)
	case s.Stamina.BreathingCue == "":
		return fmt.Errorf("%w: stamina breathing_cue is required", ErrInvalidSpec)
	case s.Movement.WalkCue == "" || s.Movement.RunCue == "":
		return fmt.Errorf("%w: movement walk_cue and run_cue are required", ErrInvalidSpec)
	}
	return nil
}

type SelfDestructSpec struct {
	RefreshTime float64 `yaml:"refresh_time"`
	MaxTime     float64 `yaml:"max_time"`
}

type PropSpec struct {
	Name         string            `yaml:"name"`
	Radius       float64           `yaml:"radius"`
	Transform    TransformSpec     `yaml:"transform"`
	SelfDestruct *SelfDestructSpec `yaml:"self_destruct"`
}

type WallSpec struct {
	From      [2]float64 `yaml:"from"`
	To        [2]float64 `yaml:"to"`
	Thickness float64    `yaml:"thickness"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type LevelSpec struct {
	Name           string        `yaml:"name"`
	Floor          float64       `yaml:"floor"`
	Spawn          TransformSpec `yaml:"spawn"`
	ListenerVolume *float64      `yaml:"listener_volume"`
	Camera         CameraSpec    `yaml:"camera"`
	Walls          []WallSpec    `yaml:"walls"`
	Props          []PropSpec    `yaml:"props"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	for i, p := range spec.Props {
		if p.SelfDestruct != nil && p.SelfDestruct.MaxTime <= 0 {
			return nil, fmt.Errorf("%w: %s prop %d (%q) self_destruct max_time must be positive", ErrInvalidSpec, filename, i, p.Name)
		}
	}
	return &spec, nil
}

type PauseMenuSpec struct {
	MenuScene      int     `yaml:"menu_scene"`
	FadeSpeed      float64 `yaml:"fade_speed"`
	FadeStepPeriod float64 `yaml:"fade_step_period"`
}

func LoadPauseMenuSpec() (*PauseMenuSpec, error) {
	spec, err := LoadSpec[PauseMenuSpec]("pause_menu.yaml")
	if err != nil {
		return nil, err
	}
	if spec.FadeSpeed <= 0 {
		return nil, fmt.Errorf("%w: pause_menu fade_speed must be positive", ErrInvalidSpec)
	}
	if spec.FadeStepPeriod < 0 {
		return nil, fmt.Errorf("%w: pause_menu fade_step_period must not be negative", ErrInvalidSpec)
	}
	return &spec, nil
}

type SceneKind string

const (
	SceneTitle SceneKind = "title"
	SceneLevel SceneKind = "level"
)

type SceneSpec struct {
	Name  string    `yaml:"name"`
	Kind  SceneKind `yaml:"kind"`
	Level string    `yaml:"level"`
	Next  int       `yaml:"next"`
}

type ScenesSpec struct {
	Scenes []SceneSpec `yaml:"scenes"`
}

func LoadScenesSpec() (*ScenesSpec, error) {
	spec, err := LoadSpec[ScenesSpec]("scenes.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks every scene kind and that each title's next scene exists.
func (s *ScenesSpec) Validate() error {
	if len(s.Scenes) == 0 {
		return fmt.Errorf("%w: scenes.yaml lists no scenes", ErrInvalidSpec)
	}
	for i, sc := range s.Scenes {
		switch sc.Kind {
		case SceneTitle:
			if err := s.CheckIndex(fmt.Sprintf("scene %d (%q) next", i, sc.Name), sc.Next); err != nil {
				return err
			}
		case SceneLevel:
			if sc.Level == "" {
				return fmt.Errorf("%w: scene %d (%q) needs a level file", ErrInvalidSpec, i, sc.Name)
			}
		default:
			return fmt.Errorf("%w: scene %d (%q) has unknown kind %q", ErrInvalidSpec, i, sc.Name, sc.Kind)
		}
	}
	return nil
}

// CheckIndex fails when index does not name a listed scene.
func (s *ScenesSpec) CheckIndex(what string, index int) error {
	if index < 0 || index >= len(s.Scenes) {
		return fmt.Errorf("%w: %s is %d, have %d scenes", ErrInvalidSpec, what, index, len(s.Scenes))
	}
	return nil
}
