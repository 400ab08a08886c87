package container_test

import (
	"testing"

	"github.com/km-arc/go-container/container"
)

func Benchmark_MakeSingleton(b *testing.B) {
	c := container.New()
	b.ReportAllocs()
	c.Singleton("logger", func(*container.Container) any { return &nullLogger{} })
	for i := 0; i < b.N; i++ {
		if _, err := c.Make("logger"); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_MakeTransient(b *testing.B) {
	c := container.New()
	b.ReportAllocs()
	c.Register("logger", func(*container.Container) any { return &nullLogger{} })
	for i := 0; i < b.N; i++ {
		if _, err := c.Make("logger"); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Inject(b *testing.B) {
	c := container.New()
	b.ReportAllocs()
	describeFixtures(c)
	for i := 0; i < b.N; i++ {
		if _, err := c.Inject("reports"); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_MakeThroughAlias(b *testing.B) {
	c := container.New()
	b.ReportAllocs()
	c.Singleton("logger", func(*container.Container) any { return &nullLogger{} })
	c.Alias("logger", "log")
	for i := 0; i < b.N; i++ {
		if _, err := c.Make("log"); err != nil {
			b.Fatal(err)
		}
	}
}
