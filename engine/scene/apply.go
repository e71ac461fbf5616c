package scene

import (
	"github.com/1siamBot/forest-scene/engine/core"
	"github.com/1siamBot/forest-scene/engine/scenery"
	"github.com/1siamBot/forest-scene/engine/settings"
)

// Apply pushes the current value of key into the scene. Callers change the
// setting first (Settings.Set, Step, CycleColor) and then call Apply. It
// reports whether key is known.
func (sc *SceneContext) Apply(key settings.Key) bool {
	s := sc.Settings
	if c, ok := settings.Lookup(key); ok && c.Type == settings.ControlColor {
		v, _ := s.ColorValue(key)
		sc.log.Debugf("setting %s = %s", key, v)
	} else if v, ok := s.Value(key); ok {
		sc.log.Debugf("setting %s = %g", key, v)
	} else {
		sc.log.Warnf("unknown setting %q", key)
		return false
	}

	switch key {
	case settings.KeyRotationSpeed, settings.KeyCameraHeight,
		settings.KeyCameraDistance, settings.KeyLookAtHeight:
		sc.updateCamera()

	case settings.KeyTerrainSize, settings.KeyTerrainHeight:
		sc.RebuildTerrain()
	case settings.KeyTerrainColor:
		sc.Terrain.Recolor(s.TerrainColor.Color3())
		sc.emit(core.EvtTerrainRecolored, s.TerrainColor)

	case settings.KeyTreeCount:
		sc.RegenerateTrees()
	case settings.KeyTrunkColor:
		sc.Forest.Recolor(scenery.PartTrunk, s.TrunkColor.Color3())
		sc.emit(core.EvtTreesRecolored, scenery.PartTrunk)
	case settings.KeyLeavesColor:
		sc.Forest.Recolor(scenery.PartLeaves, s.LeavesColor.Color3())
		sc.emit(core.EvtTreesRecolored, scenery.PartLeaves)

	case settings.KeyCloudCount:
		sc.RegenerateClouds()
	case settings.KeyCloudSpeed:
		sc.Sky.SetSpeed(s.CloudSpeed)
		sc.emit(core.EvtCloudsAdjusted, key)
	case settings.KeyCloudHeight:
		sc.Sky.SetHeight(s.CloudHeight)
		sc.emit(core.EvtCloudsAdjusted, key)

	case settings.KeyFireIntensity:
		sc.Campfire.SetIntensity(float32(s.FireIntensity))
		sc.emit(core.EvtCampfireChanged, key)
	case settings.KeyFireColor:
		sc.Campfire.SetColor(s.FireColor.Vec3())
		sc.emit(core.EvtCampfireChanged, key)
	case settings.KeySmokeDensity:
		sc.Campfire.SetSmokeDensity(s.SmokeDensity)
		sc.emit(core.EvtCampfireChanged, key)
	}
	sc.emit(core.EvtSettingChanged, key)
	return true
}

// RebuildTerrain recreates the terrain from the size and height settings,
// replants the forest on it and settles the campfire on the new ground.
func (sc *SceneContext) RebuildTerrain() {
	s := sc.Settings
	sc.Terrain = scenery.NewTerrain(s.TerrainSize, s.TerrainHeight, s.TerrainColor.Color3())
	sc.Campfire.SetBase(sc.campfireBase())
	sc.FireSound.Pos = sc.firePos()
	sc.updateLight()
	sc.log.Infof("terrain rebuilt: size=%g height=%g", s.TerrainSize, s.TerrainHeight)
	sc.emit(core.EvtTerrainRebuilt, nil)
	sc.RegenerateTrees()
}

// RegenerateTrees replaces every tree. All tree NodeIDs change.
func (sc *SceneContext) RegenerateTrees() {
	sc.plantTrees()
	sc.log.Infof("trees regenerated: %d", sc.Forest.Len())
	sc.emit(core.EvtTreesRegenerated, sc.Forest.Len())
}

// RegenerateClouds replaces every cloud at the current cloud height.
func (sc *SceneContext) RegenerateClouds() {
	s := sc.Settings
	sc.Sky = scenery.NewSky(s.CloudCount, s.CloudHeight, sc.rng)
	sc.log.Infof("clouds regenerated: %d", sc.Sky.Len())
	sc.emit(core.EvtCloudsRegenerated, sc.Sky.Len())
}
