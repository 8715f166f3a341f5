package promise_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/taskkit/pkg/promise"
)

func ExampleNew() {
	p := promise.New[string]()

	go p.Complete("ready")

	v, err := p.Get(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output: ready
}

func ExampleGo() {
	f := promise.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 6 * 7, nil
	})

	v, _ := f.Get(context.Background())
	fmt.Println(v)
	// Output: 42
}

func ExampleFuture_GetNow() {
	f := promise.NewFuture[int]()

	v, _ := f.GetNow(context.Background(), -1)
	fmt.Println(v)

	f.Complete(10)
	v, _ = f.GetNow(context.Background(), -1)
	fmt.Println(v)
	// Output:
	// -1
	// 10
}

func ExampleFuture_Cancel() {
	f := promise.NewFuture[int]()
	f.Cancel(false)

	_, err := f.Get(context.Background())
	fmt.Println(errors.Is(err, promise.ErrCancelled))
	// Output: true
}
