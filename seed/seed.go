package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
)

// EnsureProducts seeds the catalog on an empty products table. The catalog is
// read-only to the storefront layer, so this only ever runs on first boot.
func EnsureProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Create backfills IDs, so insert a copy and keep the seed data pristine.
	products := make([]models.Product, len(catalog))
	copy(products, catalog)
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d catalog products", len(products))
	return nil
}

var catalog = []models.Product{
	{Name: "10Ω Resistor", Category: "Resistor", Description: "10-ohm carbon film resistor", Price: 2.00, Image: "10r.png"},
	{Name: "100Ω Resistor", Category: "Resistor", Description: "100-ohm resistor", Price: 3.00, Image: "100r.png"},
	{Name: "220Ω Resistor", Category: "Resistor", Description: "220-ohm resistor", Price: 2.00, Image: "220r.png"},
	{Name: "330Ω Resistor", Category: "Resistor", Description: "330-ohm resistor", Price: 2.00, Image: "330r.png"},
	{Name: "1kΩ Resistor", Category: "Resistor", Description: "1k-ohm resistor", Price: 4.00, Image: "1kr.png"},
	{Name: "10µF Capacitor", Category: "Capacitor", Description: "10µF electrolytic capacitor", Price: 3.00, Image: "10c.png"},
	{Name: "22µF Capacitor", Category: "Capacitor", Description: "22µF electrolytic capacitor", Price: 3.00, Image: "22c.png"},
	{Name: "47µF Capacitor", Category: "Capacitor", Description: "47µF electrolytic capacitor", Price: 4.00, Image: "47c.png"},
	{Name: "100µF Capacitor", Category: "Capacitor", Description: "100µF electrolytic capacitor", Price: 5.00, Image: "100c.png"},
	{Name: "220µF Capacitor", Category: "Capacitor", Description: "220µF electrolytic capacitor", Price: 6.00, Image: "220c.png"},
	{Name: "1N4001 Diode", Category: "Diode", Description: "General purpose diode", Price: 3.00, Image: "4001d.png"},
	{Name: "1N4007 Diode", Category: "Diode", Description: "General purpose diode", Price: 3.00, Image: "4007d.png"},
	{Name: "1N4148 Diode", Category: "Diode", Description: "High-speed switching diode", Price: 3.00, Image: "4148d.png"},
	{Name: "Zener 5.1V Diode", Category: "Diode", Description: "5.1V Zener diode", Price: 4.00, Image: "z5.1d.png"},
	{Name: "Zener 12V Diode", Category: "Diode", Description: "12V Zener diode", Price: 4.00, Image: "z12d.png"},
	{Name: "2N2222 Transistor", Category: "Transistor", Description: "NPN transistor", Price: 5.00, Image: "2n2t.png"},
	{Name: "BC547 Transistor", Category: "Transistor", Description: "NPN small signal transistor", Price: 4.00, Image: "bc547t.png"},
	{Name: "BC557 Transistor", Category: "Transistor", Description: "PNP small signal transistor", Price: 4.00, Image: "bc557t.png"},
	{Name: "TIP120 Transistor", Category: "Transistor", Description: "NPN Darlington transistor", Price: 6.00, Image: "t120t.png"},
	{Name: "TIP31 Transistor", Category: "Transistor", Description: "NPN power transistor", Price: 6.00, Image: "t31t.png"},
	{Name: "555 Timer IC", Category: "IC", Description: "Timer IC for oscillators", Price: 15.00, Image: "555t.ic.png"},
	{Name: "LM358 Op-Amp", Category: "IC", Description: "Dual operational amplifier", Price: 18.00, Image: "lm358.ic.png"},
	{Name: "74HC00 IC", Category: "IC", Description: "Quad NAND gate IC", Price: 20.00, Image: "74H00.ic.png"},
	{Name: "4017 Decade Counter IC", Category: "IC", Description: "Decade counter IC", Price: 22.00, Image: "4017.ic.png"},
	{Name: "CD4040 Counter IC", Category: "IC", Description: "12-bit binary counter IC", Price: 25.00, Image: "cd4040.ic.png"},
	{Name: "9V Battery", Category: "Power", Description: "Standard 9V battery", Price: 25.00, Image: "9vb.png"},
	{Name: "5V Power Supply", Category: "Power", Description: "5V DC regulated power supply", Price: 50.00, Image: "5vb.png"},
	{Name: "12V Power Supply", Category: "Power", Description: "12V DC regulated power supply", Price: 60.00, Image: "12vb.png"},
	{Name: "Li-Ion 18650 Cell", Category: "Power", Description: "Rechargeable Li-Ion cell", Price: 80.00, Image: "ionb.png"},
	{Name: "USB Power Module", Category: "Power", Description: "5V USB power module", Price: 40.00, Image: "usbpm.png"},
	{Name: "Push Button", Category: "Switch", Description: "Momentary push button", Price: 5.00, Image: "pb.png"},
	{Name: "Toggle Switch", Category: "Switch", Description: "SPDT toggle switch", Price: 12.00, Image: "ts.png"},
	{Name: "Slide Switch", Category: "Switch", Description: "Slide switch", Price: 10.00, Image: "ss.png"},
	{Name: "DIP Switch", Category: "Switch", Description: "4-position DIP switch", Price: 8.00, Image: "dips.png"},
	{Name: "Rocker Switch", Category: "Switch", Description: "Rocker switch", Price: 15.00, Image: "rs.png"},
	{Name: "Red LED", Category: "LED", Description: "Standard 5mm red LED", Price: 2.00, Image: "rled.png"},
	{Name: "Green LED", Category: "LED", Description: "Standard 5mm green LED", Price: 2.00, Image: "gled.png"},
	{Name: "Blue LED", Category: "LED", Description: "Standard 5mm blue LED", Price: 2.00, Image: "bled.png"},
	{Name: "White LED", Category: "LED", Description: "Standard 5mm white LED", Price: 2.00, Image: "wled.png"},
	{Name: "RGB LED", Category: "LED", Description: "5mm RGB LED", Price: 5.00, Image: "rgbled.png"},
	{Name: "Jumper Wires", Category: "Connector", Description: "Male-Male jumper wires 30pcs", Price: 40.00, Image: "j1.png"},
	{Name: "Female Dupont", Category: "Connector", Description: "Female connectors 30pcs", Price: 35.00, Image: "fmaled.png"},
	{Name: "Male Header", Category: "Connector", Description: "Male header pins 40pcs", Price: 30.00, Image: "maleheader.png"},
	{Name: "Female Header", Category: "Connector", Description: "Female header pins 40pcs", Price: 30.00, Image: "fmaleheader.png"},
	{Name: "Terminal Block", Category: "Connector", Description: "2-pin terminal block 10pcs", Price: 25.00, Image: "tblock.png"},
	{Name: "Relay Module", Category: "Module", Description: "5V 1-channel relay module", Price: 45.00, Image: "rmod.png"},
	{Name: "L298 Motor Driver", Category: "Module", Description: "Dual H-bridge motor driver", Price: 120.00, Image: "l298dm.png"},
	{Name: "Bluetooth Module", Category: "Module", Description: "Bluetooth communication module", Price: 150.00, Image: "btoothm.png"},
	{Name: "WiFi Module", Category: "Module", Description: "WiFi ESP8266 module", Price: 180.00, Image: "wifim.png"},
	{Name: "Ultrasonic Module", Category: "Module", Description: "HC-SR04 distance sensor", Price: 100.00, Image: "usonicm.png"},
	{Name: "Arduino Uno", Category: "Microcontroller", Description: "ATmega328P development board", Price: 350.00, Image: "auno.png"},
	{Name: "Arduino Nano", Category: "Microcontroller", Description: "ATmega328P Nano board", Price: 300.00, Image: "anano.png"},
	{Name: "ESP8266", Category: "Microcontroller", Description: "WiFi development board", Price: 300.00, Image: "esp8266.png"},
	{Name: "ESP32", Category: "Microcontroller", Description: "WiFi + Bluetooth development board", Price: 600.00, Image: "esp32.png"},
	{Name: "Raspberry Pi Pico", Category: "Microcontroller", Description: "RP2040 development board", Price: 350.00, Image: "rberrypico.png"},
}
