// Package catalog holds the default pallet and container spec tables of
// spec §6: the standard pallet footprints, the ISO shipping-container
// family, and the truck-box size ladder. It mirrors the teacher's
// GCodeProfiles/GetProfile pattern of a package-level constant table plus
// a lookup helper.
package catalog

import "github.com/piwi3910/loadplan/internal/pallet"

// PalletSpec names one of the four catalog pallet footprints.
type PalletSpec string

const (
	PalletStandard PalletSpec = "standard"
	PalletEuro     PalletSpec = "euro"
	PalletUS       PalletSpec = "us"
	PalletJP       PalletSpec = "jp"
)

// Pallets maps each catalog pallet name to its pallet.Spec, in cm/kg.
var Pallets = map[PalletSpec]pallet.Spec{
	PalletStandard: {Name: "Standard", Length: 120, Width: 100, DeckThickness: 15, MassCap: 1000},
	PalletEuro:     {Name: "Euro", Length: 120, Width: 80, DeckThickness: 15, MassCap: 800},
	PalletUS:       {Name: "US", Length: 122, Width: 102, DeckThickness: 15, MassCap: 1000},
	PalletJP:       {Name: "JP", Length: 110, Width: 110, DeckThickness: 15, MassCap: 1000},
}

// GetPallet looks up a catalog pallet spec by name.
func GetPallet(name PalletSpec) (pallet.Spec, bool) {
	s, ok := Pallets[name]
	return s, ok
}

// ContainerSpec is a catalog entry for a shipping container or truck box.
type ContainerSpec struct {
	Name      string
	Length    float64 // cm
	Width     float64 // cm
	Height    float64 // cm
	MaxWeight float64 // kg
}

// ContainerName names a catalog shipping-container entry.
type ContainerName string

const (
	Container20GP ContainerName = "20GP"
	Container40GP ContainerName = "40GP"
	Container40HC ContainerName = "40HC"
	Container45HC ContainerName = "45HC"
)

// Containers is the ISO shipping-container family (§6).
var Containers = map[ContainerName]ContainerSpec{
	Container20GP: {Name: "20ft General Purpose", Length: 589, Width: 234, Height: 238, MaxWeight: 21770},
	Container40GP: {Name: "40ft General Purpose", Length: 1203, Width: 234, Height: 238, MaxWeight: 26680},
	Container40HC: {Name: "40ft High Cube", Length: 1203, Width: 234, Height: 269, MaxWeight: 26460},
	Container45HC: {Name: "45ft High Cube", Length: 1351, Width: 234, Height: 269, MaxWeight: 25600},
}

// GetContainer looks up a catalog shipping-container spec by name.
func GetContainer(name ContainerName) (ContainerSpec, bool) {
	s, ok := Containers[name]
	return s, ok
}

// TruckName names a catalog truck-box entry, from a 4.2m box van up to a
// 17.5m flatbed (§6).
type TruckName string

const (
	Truck4m2Box      TruckName = "4.2m-box"
	Truck6m0Box      TruckName = "6.0m-box"
	Truck7m2Box      TruckName = "7.2m-box"
	Truck9m6Box      TruckName = "9.6m-box"
	Truck12mBox      TruckName = "12m-box"
	Truck13m6Curtain TruckName = "13.6m-curtain"
	Truck13m6Box     TruckName = "13.6m-box"
	Truck16mFlatbed  TruckName = "16m-flatbed"
	Truck17m5Flatbed TruckName = "17.5m-flatbed"
)

// Trucks is the nine-entry truck-box size ladder (§6). Dimensions are
// interior load-space cm; weight is the legal payload cap in kg.
var Trucks = map[TruckName]ContainerSpec{
	Truck4m2Box:      {Name: "4.2m Box Van", Length: 420, Width: 200, Height: 200, MaxWeight: 1500},
	Truck6m0Box:      {Name: "6.0m Box Truck", Length: 600, Width: 220, Height: 220, MaxWeight: 3500},
	Truck7m2Box:      {Name: "7.2m Box Truck", Length: 720, Width: 230, Height: 230, MaxWeight: 5000},
	Truck9m6Box:      {Name: "9.6m Box Truck", Length: 960, Width: 235, Height: 240, MaxWeight: 10000},
	Truck12mBox:      {Name: "12m Box Truck", Length: 1200, Width: 240, Height: 250, MaxWeight: 14000},
	Truck13m6Curtain: {Name: "13.6m Curtainsider", Length: 1360, Width: 245, Height: 270, MaxWeight: 24000},
	Truck13m6Box:     {Name: "13.6m Box Trailer", Length: 1360, Width: 245, Height: 270, MaxWeight: 24000},
	Truck16mFlatbed:  {Name: "16m Flatbed", Length: 1600, Width: 250, Height: 270, MaxWeight: 27000},
	Truck17m5Flatbed: {Name: "17.5m Flatbed", Length: 1750, Width: 250, Height: 270, MaxWeight: 28000},
}

// GetTruck looks up a catalog truck-box spec by name.
func GetTruck(name TruckName) (ContainerSpec, bool) {
	s, ok := Trucks[name]
	return s, ok
}
