package main

import "github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/cmd"

func main() {
	cmd.Execute()
}
