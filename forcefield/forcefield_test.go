package forcefield

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

func TestReadITP(Te *testing.T) {
	F := New()
	if err := F.ReadITP("test/water.itp"); err != nil {
		Te.Fatal(err)
	}
	wantPIDs := []string{
		"VDWSOW", "VDWTOW", //shifted to fields 5 and 6 by the atomic-number column
		"COULOW",
		"BONDSBHW1OW", "BONDSKHW1OW",
		"ANGLESBHW1OWHW2", "ANGLESKHW1OWHW2",
	}
	if !slices.Equal(F.PIDs(), wantPIDs) {
		Te.Fatalf("got parameters %v\nwant %v", F.PIDs(), wantPIDs)
	}
	wantVals := []float64{3.15365e-01, 6.48520e-01, -0.8476, 0.09572, 502416.0, 104.52, 628.02}
	for i, w := range wantVals {
		if math.Abs(F.Pval(i)-w) > 1e-12 {
			Te.Errorf("%s: got %v, want %v", F.PIDs()[i], F.Pval(i), w)
		}
	}
	//the RPT line ties its fields to the parameters of the first bond
	b := F.Map["BONDSBHW1OW"]
	if len(F.PFields[b]) != 2 {
		Te.Fatalf("BONDSBHW1OW has %d locations, want 2", len(F.PFields[b]))
	}
	if F.PFields[b][1].Mult != 1.0 || F.PFields[b][1].Field != 3 {
		Te.Errorf("wrong repeated location: %+v", F.PFields[b][1])
	}
	//and the hydrogen charge is minus the oxygen one
	q := F.Map["COULOW"]
	if len(F.PFields[q]) != 2 || F.PFields[q][1].Mult != -1.0 {
		Te.Errorf("wrong charge locations: %+v", F.PFields[q])
	}
	v := F.Pvals()
	if v.Len() != len(wantVals) {
		Te.Errorf("Pvals length %d, want %d", v.Len(), len(wantVals))
	}
	if v.AtVec(4) != 502416.0 {
		Te.Errorf("Pvals slot 4: got %v", v.AtVec(4))
	}
	fmt.Println("collected parameters:", F.PIDs())
}

func TestReadCompressed(Te *testing.T) {
	F := New()
	if err := F.ReadITP("test/water.itp.gz"); err != nil {
		Te.Fatal(err)
	}
	F2 := New()
	if err := F2.ReadITP("test/water.itp"); err != nil {
		Te.Fatal(err)
	}
	if F.NParams() != F2.NParams() {
		Te.Errorf("gzipped file gave %d parameters, plain file %d", F.NParams(), F2.NParams())
	}
	for pid, ix := range F2.Map {
		jx, ok := F.Map[pid]
		if !ok || F.Pval(jx) != F2.Pval(ix) {
			Te.Errorf("parameter %s differs between plain and gzipped reads", pid)
		}
	}
}

func TestOldPvals(Te *testing.T) {
	F := New()
	F.AddParam("BONDSBCACB", 0.15, PField{"ff.itp", 10, 3, 1.0})
	F.AddParam("BONDSKCACB", 2500.0, PField{"ff.itp", 10, 4, 1.0})
	m := F.OldPvals()
	r, c := m.Rows(), m.Cols()
	if r != 2 || c != 1 {
		Te.Errorf("legacy vector is %dx%d, want 2x1", r, c)
	}
	if m.Get(1, 0) != 2500.0 {
		Te.Errorf("legacy vector value: %v", m.Get(1, 0))
	}
}

func TestScanTags(Te *testing.T) {
	parms, rpts, err := scanTags(" some comment PARM 4 5 6")
	if err != nil {
		Te.Fatal(err)
	}
	if !slices.Equal(parms, []int{4, 5, 6}) || len(rpts) != 0 {
		Te.Errorf("got %v %v", parms, rpts)
	}
	parms, rpts, err = scanTags("RPT 4 ANGLESBCACAH 5 MINUS_ANGLESKCACAH /RPT")
	if err != nil {
		Te.Fatal(err)
	}
	if len(parms) != 0 || len(rpts) != 2 {
		Te.Fatalf("got %v %v", parms, rpts)
	}
	if rpts[0] != (rptRef{4, "ANGLESBCACAH", 1.0}) || rpts[1] != (rptRef{5, "ANGLESKCACAH", -1.0}) {
		Te.Errorf("got %+v", rpts)
	}
	if _, _, err = scanTags("RPT 4 /RPT"); err == nil {
		Te.Error("expected an error for a field with no identifier")
	}
	if _, _, err = scanTags("RPT four PID /RPT"); err == nil {
		Te.Error("expected an error for a non-numeric field")
	}
	//an ordinary comment carries no tags and no error
	parms, rpts, err = scanTags(" equilibrium value from the 2004 reparameterization")
	if err != nil || len(parms) != 0 || len(rpts) != 0 {
		Te.Errorf("got %v %v %v", parms, rpts, err)
	}
}

func TestDuplicatePID(Te *testing.T) {
	F := New()
	i1 := F.AddParam("VDWSOW", 0.315, PField{"a.itp", 3, 5, 1.0})
	i2 := F.AddParam("VDWSOW", 0.999, PField{"b.itp", 7, 5, 1.0}) //same parameter, other file
	if i1 != i2 {
		Te.Errorf("duplicate pid got a new slot: %d vs %d", i1, i2)
	}
	if F.NParams() != 1 || F.Pval(0) != 0.315 {
		Te.Errorf("first value should win: %v", F.Pval(0))
	}
	if len(F.PFields[0]) != 2 {
		Te.Errorf("both locations should be kept: %+v", F.PFields[0])
	}
}
