package render

// Palette for the space scene and overlays
var (
	RgbSpace       = RGB{2, 3, 10}      // Near-black background
	RgbStar        = RGB{255, 255, 255} // Starfield points
	RgbOrbit       = Hex(0x444444)      // Orbit polylines
	RgbCorona      = Hex(0xff4500)      // Sun halo
	RgbAsteroid    = Hex(0x888888)      // Belt members
	RgbLabel       = RGB{230, 230, 230} // Body name labels
	RgbPanelBg     = RGB{16, 18, 32}    // Info panel fill
	RgbPanelBorder = RGB{120, 130, 170} // Info panel frame
	RgbPanelTitle  = RGB{255, 200, 120} // Info panel heading
	RgbPanelText   = RGB{210, 210, 220} // Info panel body
	RgbHudBg       = RGB{20, 22, 36}    // Affordance bar fill
	RgbHudKey      = RGB{255, 170, 60}  // Key hint in affordance bar
	RgbHudText     = RGB{200, 200, 210} // Affordance label
	RgbHudStat     = RGB{120, 200, 140} // FPS and distance readout
	RgbLoading     = RGB{255, 200, 80}  // Loading indicator text
)
