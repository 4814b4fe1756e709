package main

import "github.com/devMohamedYusri/life-pilot-evolved-app/cmd/lp/root"

func main() {
	root.Execute()
}
