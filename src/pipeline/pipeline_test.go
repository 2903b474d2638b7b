package pipeline

import (
	"testing"
)

/*
DUMMY PIPELINE
*/

type componentA struct {
	input  []int
	output chan int
}

func newComponentA(i []int) *componentA {
	return &componentA{input: i, output: make(chan int)}
}

func (componentA *componentA) Run() {
	defer close(componentA.output)
	for _, input := range componentA.input {
		componentA.output <- input
	}
}

type componentB struct {
	input    chan int
	addition int
	results  []int
}

func newComponentB(i int) *componentB {
	return &componentB{addition: i}
}

func (componentB *componentB) Connect(previous *componentA) {
	componentB.input = previous.output
}

func (componentB *componentB) Run() {
	results := []int{}
	for input := range componentB.input {
		results = append(results, (input + componentB.addition))
	}
	componentB.results = results
}

/*
DUMMY PIPELINE TEST
*/

func TestPipeline(t *testing.T) {
	inputValues := []int{1, 2, 3, 4}
	expectedOutput := []int{11, 12, 13, 14}

	// create the processes
	a := newComponentA(inputValues)
	b := newComponentB(10)

	// create the pipeline
	newPipeline := NewPipeline()

	// add the processes and connect them
	newPipeline.AddProcesses(a, b)
	b.Connect(a)
	if newPipeline.GetNumProcesses() != 2 {
		t.Fatal("did not add correct number of processes to pipeline")
	}

	// run the pipeline
	newPipeline.Run()

	// once the pipeline is done, there should be results in the final component
	if len(expectedOutput) != len(b.results) {
		t.Fatal("pipeline did not produce expected output")
	}
	for i, val := range b.results {
		if val != expectedOutput[i] {
			t.Fatal("pipeline did not produce expected output")
		}
	}
}
