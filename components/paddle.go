package components

// KeyBinding holds the key names that move a paddle
// Names match input.KeyName output ("w", "Up", "Space")
type KeyBinding struct {
	Up   string
	Down string
}

// PaddleComponent marks an entity as a player's paddle
// Created once per player at startup and never destroyed during a session
type PaddleComponent struct {
	Player   Player
	Bindings KeyBinding
}
