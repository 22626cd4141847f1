package scene

import "image"

// handPoints outlines the hand: a forked tail at the origin and a tip
// pointing down the local y axis.
var handPoints = []image.Point{
	{-2, -4}, {-4, 0}, {-6, -4}, {0, 23},
	{-4, 21}, {-3, 25}, {-6, 27}, {-2, 28}, {0, 32}, {2, 28}, {6, 27}, {3, 25}, {4, 21}, {0, 23},
	{6, -4}, {4, 0}, {2, -4}, {0, 0},
}

// starPoints outlines the five-pointed lucky star.
var starPoints = []image.Point{
	{-5, -7}, {0, -16}, {5, -7}, {15, -4}, {8, 3}, {10, 14}, {0, 8}, {-10, 14}, {-8, 3}, {-15, -4},
}
