package cmd

// Gadget drives the keyboard PCB from a Linux single-board computer. Pin
// names are periph GPIO registry names.
type Gadget struct {
	Firmware `embed:""`

	Load        string `help:"Matrix register load line" default:"GPIO17" env:"MATRIXKB_PIN_LOAD"`
	MatrixClock string `help:"Matrix register clock line" default:"GPIO27" env:"MATRIXKB_PIN_MATRIX_CLOCK"`
	Sense       string `help:"Matrix register serial output" default:"GPIO22" env:"MATRIXKB_PIN_SENSE"`
	Data        string `help:"LED driver serial input" default:"GPIO23" env:"MATRIXKB_PIN_DATA"`
	LightClock  string `help:"LED driver clock" default:"GPIO24" env:"MATRIXKB_PIN_LIGHT_CLOCK"`
	Latch       string `help:"LED driver latch" default:"GPIO25" env:"MATRIXKB_PIN_LATCH"`
	Blank       string `help:"LED driver blank" default:"GPIO5" env:"MATRIXKB_PIN_BLANK"`
	Status      string `help:"Optional activity LED" env:"MATRIXKB_PIN_STATUS"`
	Device      string `help:"HID gadget device" default:"/dev/hidg0" type:"path" env:"MATRIXKB_DEVICE"`
}
