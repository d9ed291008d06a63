package main

import (
	"os"

	"github.com/karlseguin/slist"
	"github.com/wsxiaoys/terminal"
)

func main() {
	l := slist.New[string]()
	l.Insert("teste")
	l.Insert("teste2")
	l.Insert("teste3")

	it := l.Iter()
	l.Push("teste4")
	if value, ok := l.Pop(); ok {
		terminal.Stdout.Color("y").Print("popped ").Reset().Print(value).Nl()
	}

	config := slist.Configure().Color("g")
	if err := l.DisplayWith(terminal.Stdout, config); err != nil {
		terminal.Stderr.Color("r").Print("display: ").Reset().Print(err).Nl()
		os.Exit(1)
	}

	terminal.Stdout.Color("y").Print("count ").Reset().Print(l.Count()).Nl()
	for value := range it.All() {
		terminal.Stdout.Color("c").Print("iter ").Reset().Print(value).Nl()
	}

	empty := slist.New[string]()
	if _, ok := empty.Pop(); !ok {
		terminal.Stdout.Color("y").Print("empty ").Reset().Print("nothing to pop").Nl()
	}
}
