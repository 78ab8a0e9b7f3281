// Command dndreplay replays a gesture script against a scene description
// headlessly and prints the drag-and-drop lifecycle it produces.
//
//	dndreplay run --scene scene.yaml --script drag.yaml --backend touch
package main

func main() {
	Execute()
}
