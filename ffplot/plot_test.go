package ffplot

import (
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/falagara/forcebalance/forcefield"
)

func testFF() *forcefield.FF {
	F := forcefield.New()
	F.AddParam("BONDSBHW1OW", 0.09572, forcefield.PField{File: "water.itp", Line: 18, Field: 3, Mult: 1.0})
	F.AddParam("BONDSKHW1OW", 5.0, forcefield.PField{File: "water.itp", Line: 18, Field: 4, Mult: 1.0})
	F.AddParam("ANGLESBHW1OWHW2", 104.52, forcefield.PField{File: "water.itp", Line: 22, Field: 4, Mult: 1.0})
	return F
}

func TestSummary(Te *testing.T) {
	mean, stdev := Summary(testFF())
	wantMean := (0.09572 + 5.0 + 104.52) / 3
	if math.Abs(mean-wantMean) > 1e-9 {
		Te.Errorf("mean: got %v, want %v", mean, wantMean)
	}
	if stdev <= 0 {
		Te.Errorf("stdev: got %v", stdev)
	}
	mean, stdev = Summary(forcefield.New())
	if mean != 0 || stdev != 0 {
		Te.Errorf("empty set: got %v %v", mean, stdev)
	}
}

func TestParamPlot(Te *testing.T) {
	if err := os.MkdirAll("test", 0755); err != nil {
		Te.Fatal(err)
	}
	if err := ParamPlot(testFF(), "test/params.png"); err != nil {
		Te.Error(err)
	}
	if err := ParamPlot(forcefield.New(), "test/empty.png"); err == nil {
		Te.Error("expected an error for an empty parameter set")
	}
	fmt.Println("parameter plot written!")
}
