package world

// Obstacle is the static content of a grid cell.
type Obstacle int

const (
	ObstacleNone Obstacle = iota
	ObstacleWall
	ObstacleLava
)

// String returns the obstacle name used in touch resolution.
func (o Obstacle) String() string {
	switch o {
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return ""
	}
}
