package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/calafrios/assets"
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"github.com/milk9111/calafrios/ecs/entity"
	"github.com/milk9111/calafrios/ecs/system"
	"github.com/milk9111/calafrios/prefabs"
	"github.com/rs/zerolog/log"
)

const physicsStep = 1.0 / 60.0

type GameOptions struct {
	Scene int
	Watch bool
	Debug bool
}

type Game struct {
	frames int
	debug  bool

	scenes     *prefabs.ScenesSpec
	sceneIndex int

	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity

	input    *Input
	renderer *Renderer
	pauseUI  *PauseUI
	watcher  *prefabs.Watcher

	cursorLocked bool
}

func NewGame(opts GameOptions) (*Game, error) {
	scenes, err := prefabs.LoadScenesSpec()
	if err != nil {
		return nil, err
	}
	pauseSpec, err := prefabs.LoadPauseMenuSpec()
	if err != nil {
		return nil, err
	}
	if err := scenes.CheckIndex("pause_menu menu_scene", pauseSpec.MenuScene); err != nil {
		return nil, err
	}
	if err := scenes.CheckIndex("start scene", opts.Scene); err != nil {
		return nil, err
	}

	g := &Game{
		debug:    opts.Debug,
		scenes:   scenes,
		input:    NewInput(),
		renderer: NewRenderer(),
	}
	g.pauseUI = NewPauseUI(func(action component.PauseAction, value float64) {
		system.RequestPauseWithValue(g.world, action, value)
	})

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DefaultDebounce, prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Warn().Err(err).Msg("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	if err := g.loadScene(opts.Scene); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// loadScene discards the current world and builds the scene at index.
func (g *Game) loadScene(index int) error {
	if index < 0 || index >= len(g.scenes.Scenes) {
		return fmt.Errorf("scene %d: out of range (have %d)", index, len(g.scenes.Scenes))
	}
	scene := g.scenes.Scenes[index]

	if g.world != nil {
		system.SilenceAudio(g.world)
	}

	w := ecs.NewWorld()
	var player ecs.Entity
	if scene.Kind == prefabs.SceneLevel {
		level, err := prefabs.LoadLevelSpec(scene.Level)
		if err != nil {
			return fmt.Errorf("scene %d (%s): %w", index, scene.Name, err)
		}
		playerSpec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return fmt.Errorf("scene %d (%s): %w", index, scene.Name, err)
		}
		pauseSpec, err := prefabs.LoadPauseMenuSpec()
		if err != nil {
			return fmt.Errorf("scene %d (%s): %w", index, scene.Name, err)
		}
		if err := g.scenes.CheckIndex("pause_menu menu_scene", pauseSpec.MenuScene); err != nil {
			return fmt.Errorf("scene %d (%s): %w", index, scene.Name, err)
		}
		player, err = entity.BuildLevel(w, entity.LevelSpecs{Level: level, Player: playerSpec, Pause: pauseSpec}, loadCue)
		if err != nil {
			return fmt.Errorf("scene %d (%s): %w", index, scene.Name, err)
		}
	}

	g.world = w
	g.player = player
	g.sceneIndex = index
	g.scheduler = system.NewLevelScheduler(g.input, physicsStep)
	g.applyCursor(scene.Kind == prefabs.SceneLevel)

	log.Info().Int("index", index).Str("scene", scene.Name).Msg("scene loaded")
	return nil
}

func loadCue(clip prefabs.AudioSpec) (component.AudioPlayer, error) {
	return assets.LoadAudioPlayer(clip.File, clip.Loop)
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	scene := g.scenes.Scenes[g.sceneIndex]
	if scene.Kind == prefabs.SceneTitle {
		return g.updateTitle(scene)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.scheduler.Advance(g.world, dt)

	if _, ok := ecs.First(g.world, component.QuitRequestComponent.Kind()); ok {
		system.SilenceAudio(g.world)
		return ebiten.Termination
	}

	if e, req, ok := ecs.Single(g.world, component.SceneLoadRequestComponent.Kind()); ok {
		index := req.Index
		ecs.DestroyEntity(g.world, e)
		if err := g.loadScene(index); err != nil {
			return err
		}
		return nil
	}

	if _, menu, ok := ecs.Single(g.world, component.PauseMenuComponent.Kind()); ok {
		g.applyCursor(menu.CursorLocked)
		if menu.Paused() && !menu.Leaving {
			g.pauseUI.Update(menu.Panel, g.listenerVolume())
		}
	}
	return nil
}

func (g *Game) updateTitle(scene prefabs.SceneSpec) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return g.loadScene(scene.Next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) applyCursor(locked bool) {
	if locked == g.cursorLocked && g.frames > 1 {
		return
	}
	g.cursorLocked = locked
	if locked {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) listenerVolume() float64 {
	if _, l, ok := ecs.Single(g.world, component.AudioListenerComponent.Kind()); ok {
		return l.Volume
	}
	return 1
}

// reloadPrefabs re-applies edited player tuning to the live player. Other
// prefabs take effect on the next scene load.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changes, err := g.watcher.Drain()
	if err != nil {
		log.Warn().Err(err).Msg("prefab watcher error")
	}
	if len(changes) == 0 || !g.player.Valid() || !ecs.IsAlive(g.world, g.player) {
		return
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Error().Err(err).Msg("prefab reload: player")
		return
	}
	if err := entity.ApplyPlayerTuning(g.world, g.player, spec); err != nil {
		log.Error().Err(err).Msg("prefab reload: apply player tuning")
		return
	}
	for _, c := range changes {
		log.Info().Str("file", c.Name()).Msg("prefab reloaded")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	scene := g.scenes.Scenes[g.sceneIndex]
	if scene.Kind == prefabs.SceneTitle {
		g.renderer.DrawTitle(screen)
		return
	}

	g.renderer.DrawLevel(screen, g.world, g.player)

	if _, menu, ok := ecs.Single(g.world, component.PauseMenuComponent.Kind()); ok && menu.Paused() && !menu.Leaving {
		g.pauseUI.Draw(screen)
	}

	g.renderer.DrawFade(screen, g.world)

	if g.debug {
		g.renderer.DrawDebug(screen, g.world, g.player)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
