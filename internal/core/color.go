package core

// Color is the foreground role of a screen cell. The platform decides the
// actual terminal color for each role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer        // The player's dragon
	ColorEdible        // Enemies the player can eat
	ColorThreat        // Enemies that would hurt the player
	ColorRock          // Obstacles
	ColorHeart         // Health in the HUD
	ColorText          // HUD and message text
	ColorFrame         // Message box borders and titles
)
