package gameplay

// Message log keys, translated by the renderers
const (
	MsgWelcome         = "WELCOME"
	MsgLevel           = "LEVEL_NUMBER"
	MsgTrap            = "TRAP_TRIGGERED"
	MsgTeleport        = "TELEPORTED"
	MsgMazeShifted     = "MAZE_SHIFTED"
	MsgExitReached     = "EXIT_REACHED"
	MsgLevelUp         = "LEVEL_UP"
	MsgCaught          = "ADVERSARY_HIT"
	MsgGameOver        = "GAME_OVER"
	MsgLightOn         = "LIGHT_ON"
	MsgLightOff        = "LIGHT_OFF"
	MsgBatteryFlat     = "BATTERY_FLAT"
	MsgBatteryTooLow   = "BATTERY_TOO_LOW"
	MsgPlacementShort  = "PLACEMENT_SHORT"
	MsgWorldRestarted  = "WORLD_RESTARTED"
	MsgRestartProgress = "PROGRESS_LOST"
)
