package catalog

import "github.com/nexlume/fibercat/internal/model"

// Stocked products outside the generated patch-cord and transceiver ranges.

func topSKUs() []model.Product {
	return []model.Product{
		// Patch cords
		{SKU: "NX-PC-LCLC-SM-DX-1M", Name: "LC-LC OS2 Singlemode Duplex Patch Cord — 1m", Category: "patch-cords", Subcategory: "sm-duplex", Specs: []string{"OS2 9/125μm", "Duplex", "LSZH", "IL ≤0.2dB"}, Price: 3.99, CompareAt: model.Price(4.5), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-PC-LCLC-SM-DX-2M", Name: "LC-LC OS2 Singlemode Duplex Patch Cord — 2m", Category: "patch-cords", Subcategory: "sm-duplex", Specs: []string{"OS2 9/125μm", "Duplex", "LSZH", "IL ≤0.2dB"}, Price: 4.49, CompareAt: model.Price(5.2), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-PC-LCLC-SM-DX-3M", Name: "LC-LC OS2 Singlemode Duplex Patch Cord — 3m", Category: "patch-cords", Subcategory: "sm-duplex", Specs: []string{"OS2 9/125μm", "Duplex", "LSZH", "IL ≤0.2dB"}, Price: 4.99, CompareAt: model.Price(5.8), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PC-LCLC-SM-DX-5M", Name: "LC-LC OS2 Singlemode Duplex Patch Cord — 5m", Category: "patch-cords", Subcategory: "sm-duplex", Specs: []string{"OS2 9/125μm", "Duplex", "LSZH", "IL ≤0.2dB"}, Price: 5.99, CompareAt: model.Price(7), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PC-LCLC-OM4-DX-1M", Name: "LC-LC OM4 Multimode Duplex Patch Cord — 1m", Category: "patch-cords", Subcategory: "om4-duplex", Specs: []string{"OM4 50/125μm", "Duplex", "LSZH", "Aqua"}, Price: 4.49, CompareAt: model.Price(5.5), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-PC-LCLC-OM4-DX-3M", Name: "LC-LC OM4 Multimode Duplex Patch Cord — 3m", Category: "patch-cords", Subcategory: "om4-duplex", Specs: []string{"OM4 50/125μm", "Duplex", "LSZH", "Aqua"}, Price: 5.49, CompareAt: model.Price(6.8), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PC-SCAPC-SM-SX-1M", Name: "SC/APC OS2 Singlemode Simplex Patch Cord — 1m", Category: "patch-cords", Subcategory: "sm-simplex", Specs: []string{"OS2 9/125μm", "Simplex", "LSZH", "APC"}, Price: 3.29, CompareAt: model.Price(4), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBEADReady},
		{SKU: "NX-PC-SCAPC-SM-SX-3M", Name: "SC/APC OS2 Singlemode Simplex Patch Cord — 3m", Category: "patch-cords", Subcategory: "sm-simplex", Specs: []string{"OS2 9/125μm", "Simplex", "LSZH", "APC"}, Price: 3.99, CompareAt: model.Price(4.8), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBEADReady},
		{SKU: "NX-PC-SCLC-SM-DX-2M", Name: "SC-LC OS2 Singlemode Duplex Patch Cord — 2m", Category: "patch-cords", Subcategory: "sm-duplex", Specs: []string{"OS2 9/125μm", "Duplex", "LSZH"}, Price: 4.49, CompareAt: model.Price(5.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PC-MPO12-SM-3M", Name: "MPO-12 OS2 Singlemode Trunk Cable — 3m", Category: "patch-cords", Subcategory: "mpo-trunk", Specs: []string{"12F OS2", "Type A", "Elite Grade", "LSZH"}, Price: 29.99, CompareAt: model.Price(38), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},

		// Transceivers
		{SKU: "NX-SFP-10G-SR", Name: "10G SFP+ SR Multimode Transceiver — 850nm 300m", Category: "transceivers", Subcategory: "sfp-plus-10g", Specs: []string{"10Gbps", "850nm", "OM3 300m / OM4 400m", "DDM"}, Price: 12.99, CompareAt: model.Price(45), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-SFP-10G-LR", Name: "10G SFP+ LR Singlemode Transceiver — 1310nm 10km", Category: "transceivers", Subcategory: "sfp-plus-10g", Specs: []string{"10Gbps", "1310nm", "OS2 10km", "DDM"}, Price: 15.99, CompareAt: model.Price(55), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-SFP-1G-SX", Name: "1G SFP SX Multimode Transceiver — 850nm 550m", Category: "transceivers", Subcategory: "sfp-1g", Specs: []string{"1Gbps", "850nm", "OM2 550m", "DDM"}, Price: 8.99, CompareAt: model.Price(30), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SFP-1G-LX", Name: "1G SFP LX Singlemode Transceiver — 1310nm 10km", Category: "transceivers", Subcategory: "sfp-1g", Specs: []string{"1Gbps", "1310nm", "OS2 10km", "DDM"}, Price: 9.99, CompareAt: model.Price(35), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-QSFP28-100G-SR4", Name: "100G QSFP28 SR4 Transceiver — 850nm 100m", Category: "transceivers", Subcategory: "qsfp28-100g", Specs: []string{"100Gbps", "850nm", "OM4 100m", "MPO-12"}, Price: 49.99, CompareAt: model.Price(180), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-QSFP28-100G-LR4", Name: "100G QSFP28 LR4 Transceiver — 1310nm 10km", Category: "transceivers", Subcategory: "qsfp28-100g", Specs: []string{"100Gbps", "1310nm", "OS2 10km", "LC Duplex"}, Price: 89.99, CompareAt: model.Price(350), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-QSFP-DD-400G-SR8", Name: "400G QSFP-DD SR8 Transceiver — 850nm 100m", Category: "transceivers", Subcategory: "qsfp-dd-400g", Specs: []string{"400Gbps", "850nm", "OM4 100m", "MPO-16"}, Price: 189.99, CompareAt: model.Price(600), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeNew},

		// Adapters and passives
		{SKU: "NX-AD-LCLC-SM-DX", Name: "LC-LC Singlemode Duplex Adapter — Blue", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Duplex", "Zirconia Sleeve", "Blue"}, Price: 1.49, CompareAt: model.Price(2.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AD-SCAPC-SM-SX", Name: "SC/APC Singlemode Simplex Adapter — Green", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Simplex", "APC", "Green"}, Price: 1.29, CompareAt: model.Price(2), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AT-LC-5DB", Name: "LC/UPC Fixed Attenuator — 5dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"LC/UPC", "5dB", "Singlemode", "Male-Female"}, Price: 3.99, CompareAt: model.Price(6.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SPL-PLC-1X8-SC", Name: "PLC Splitter 1×8 SC/APC — Blockless", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×8", "SC/APC", "Blockless", "IL ≤10.5dB"}, Price: 12.99, CompareAt: model.Price(20), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBEADReady},

		// Infrastructure
		{SKU: "NX-PP-1U-24-LC", Name: "1U 24-Port LC Duplex Patch Panel — Loaded", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "24 LC Duplex", "Pre-loaded", "SM/MM"}, Price: 45.99, CompareAt: model.Price(65), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-PP-1U-48-LC", Name: "1U 48-Port LC Duplex Patch Panel — Loaded", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "48 LC Duplex", "Pre-loaded", "High Density"}, Price: 79.99, CompareAt: model.Price(110), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-WM-12-SC", Name: "Wall-Mount Enclosure 12-Port SC", Category: "patch-panels", Subcategory: "wall-mount", Specs: []string{"12 Port", "SC Simplex", "Indoor", "Lockable"}, Price: 32.99, CompareAt: model.Price(45), InStock: true, QuickShip: true, Tier: model.TierB},

		// Tools and test
		{SKU: "NX-VFL-10MW", Name: "Visual Fault Locator 10mW — Red Laser", Category: "test-equipment", Subcategory: "vfl", Specs: []string{"10mW", "650nm Red", "2.5mm + 1.25mm", "10km Range"}, Price: 18.99, CompareAt: model.Price(30), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-OPM-PRO", Name: "Optical Power Meter — Pro Series", Category: "test-equipment", Subcategory: "power-meters", Specs: []string{"-70 to +10 dBm", "850/1310/1550nm", "FC/SC/ST", "Rechargeable"}, Price: 39.99, CompareAt: model.Price(65), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAN-LC-CLICK", Name: "LC One-Click Cleaner — 1.25mm", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"1.25mm Ferrule", "800+ Cleans", "LC/MU", "No Alcohol"}, Price: 6.99, CompareAt: model.Price(10), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAN-SC-CLICK", Name: "SC One-Click Cleaner — 2.5mm", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"2.5mm Ferrule", "500+ Cleans", "SC/FC/ST", "No Alcohol"}, Price: 6.99, CompareAt: model.Price(10), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-KIT-CLEAN-PRO", Name: "Fiber Cleaning Kit — Professional", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"LC + SC Cleaners", "IPA Wipes", "Lint-Free Swabs", "Carrying Case"}, Price: 34.99, CompareAt: model.Price(55), InStock: true, QuickShip: true, Tier: model.TierA},
	}
}

func infrastructure() []model.Product {
	return []model.Product{
		// Rack-mount panels
		{SKU: "NX-PP-1U-12-LC", Name: "1U 12-Port LC Duplex Patch Panel — Loaded", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "12 LC Duplex", "24 Fibers", "Pre-loaded"}, Price: 29.99, CompareAt: model.Price(42), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PP-1U-24-LC", Name: "1U 24-Port LC Duplex Patch Panel — Loaded", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "24 LC Duplex", "48 Fibers", "Pre-loaded"}, Price: 45.99, CompareAt: model.Price(65), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-PP-1U-48-LC", Name: "1U 48-Port LC Duplex Patch Panel — High Density", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "48 LC Duplex", "96 Fibers", "Pre-loaded"}, Price: 79.99, CompareAt: model.Price(110), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-PP-2U-72-LC", Name: "2U 72-Port LC Duplex Patch Panel", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"2U 19\"", "72 LC Duplex", "144 Fibers", "Pre-loaded"}, Price: 129.99, CompareAt: model.Price(180), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-PP-4U-96-LC", Name: "4U 96-Port LC Duplex Patch Panel", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"4U 19\"", "96 LC Duplex", "192 Fibers", "Pre-loaded"}, Price: 189.99, CompareAt: model.Price(260), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-PP-1U-24-SC", Name: "1U 24-Port SC Simplex Patch Panel", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "24 SC Simplex", "24 Fibers", "Pre-loaded"}, Price: 39.99, CompareAt: model.Price(55), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-PP-1U-EMPTY-4LGX", Name: "1U Empty Patch Panel — 4 LGX Slots", Category: "patch-panels", Subcategory: "rack-mount", Specs: []string{"1U 19\"", "4 LGX Slots", "Empty", "Modular"}, Price: 22.99, CompareAt: model.Price(32), InStock: true, QuickShip: true, Tier: model.TierB},

		// Wall-mount enclosures
		{SKU: "NX-WM-4P-SC", Name: "Wall-Mount Enclosure 4-Port", Category: "patch-panels", Subcategory: "wall-mount", Specs: []string{"4 Port", "SC/LC", "Indoor", "Lockable"}, Price: 18.99, CompareAt: model.Price(28), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-WM-12P-SC", Name: "Wall-Mount Enclosure 12-Port", Category: "patch-panels", Subcategory: "wall-mount", Specs: []string{"12 Port", "SC/LC", "Indoor", "Lockable"}, Price: 32.99, CompareAt: model.Price(45), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-WM-24P-LC", Name: "Wall-Mount Enclosure 24-Port", Category: "patch-panels", Subcategory: "wall-mount", Specs: []string{"24 Port", "LC Duplex", "Indoor", "Lockable"}, Price: 49.99, CompareAt: model.Price(68), InStock: true, QuickShip: true, Tier: model.TierB},

		// LGX cassettes
		{SKU: "NX-LGX-12LC-SM", Name: "LGX Cassette 12-Port LC SM — Pre-loaded", Category: "patch-panels", Subcategory: "lgx-cassettes", Specs: []string{"12 LC Duplex", "Singlemode", "24 Fibers", "Blue"}, Price: 24.99, CompareAt: model.Price(35), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-LGX-12LC-MM", Name: "LGX Cassette 12-Port LC MM — Pre-loaded", Category: "patch-panels", Subcategory: "lgx-cassettes", Specs: []string{"12 LC Duplex", "Multimode", "24 Fibers", "Aqua"}, Price: 24.99, CompareAt: model.Price(35), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-LGX-MPO-12LC", Name: "LGX MPO to 12×LC Cassette Module", Category: "patch-panels", Subcategory: "lgx-cassettes", Specs: []string{"1×MPO to 12×LC", "OS2", "Type A", "Pre-loaded"}, Price: 39.99, CompareAt: model.Price(55), InStock: true, QuickShip: true, Tier: model.TierA},

		// Cable management
		{SKU: "NX-CM-DRING-10PK", Name: "D-Ring Cable Manager — 10 Pack", Category: "patch-panels", Subcategory: "cable-management", Specs: []string{"1.5\" D-Ring", "Steel", "Black", "10 Pack"}, Price: 9.99, CompareAt: model.Price(15), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-CM-1U-HORIZ", Name: "1U Horizontal Cable Manager", Category: "patch-panels", Subcategory: "cable-management", Specs: []string{"1U 19\"", "Finger Duct", "Steel", "Black"}, Price: 14.99, CompareAt: model.Price(22), InStock: true, QuickShip: true, Tier: model.TierB},
	}
}

func adaptersPassives() []model.Product {
	return []model.Product{
		// Adapters
		{SKU: "NX-AD-LCLC-SM-DX", Name: "LC-LC SM Duplex Adapter — Blue", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Duplex", "Zirconia", "Blue"}, Price: 1.49, CompareAt: model.Price(2.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AD-LCLC-MM-DX", Name: "LC-LC MM Duplex Adapter — Aqua", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Multimode", "Duplex", "Zirconia", "Aqua"}, Price: 1.49, CompareAt: model.Price(2.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AD-SCSC-SM-SX", Name: "SC-SC SM Simplex Adapter — Blue", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Simplex", "Zirconia", "Blue"}, Price: 0.99, CompareAt: model.Price(1.8), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AD-SCAPC-SM-SX", Name: "SC/APC SM Simplex Adapter — Green", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Simplex", "APC", "Green"}, Price: 1.29, CompareAt: model.Price(2), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AD-FCFC-SM-SX", Name: "FC-FC SM Simplex Adapter", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Singlemode", "Simplex", "Zirconia", "Threaded"}, Price: 1.49, CompareAt: model.Price(2.5), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-AD-STST-MM-SX", Name: "ST-ST MM Simplex Adapter", Category: "adapters", Subcategory: "fiber-adapters", Specs: []string{"Multimode", "Simplex", "Zirconia", "Bayonet"}, Price: 1.29, CompareAt: model.Price(2.2), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-AD-SCLC-HYB-SX", Name: "SC-LC Hybrid Adapter — Singlemode", Category: "adapters", Subcategory: "hybrid-adapters", Specs: []string{"SC to LC", "Singlemode", "Simplex", "Blue"}, Price: 3.49, CompareAt: model.Price(5.5), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-AD-FCLC-HYB-SX", Name: "FC-LC Hybrid Adapter — Singlemode", Category: "adapters", Subcategory: "hybrid-adapters", Specs: []string{"FC to LC", "Singlemode", "Simplex"}, Price: 3.99, CompareAt: model.Price(6), InStock: true, QuickShip: true, Tier: model.TierB},

		// Attenuators
		{SKU: "NX-AT-LC-1DB", Name: "LC/UPC Fixed Attenuator — 1dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"LC/UPC", "1dB", "SM", "Male-Female"}, Price: 3.49, CompareAt: model.Price(5.5), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-AT-LC-3DB", Name: "LC/UPC Fixed Attenuator — 3dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"LC/UPC", "3dB", "SM", "Male-Female"}, Price: 3.49, CompareAt: model.Price(5.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AT-LC-5DB", Name: "LC/UPC Fixed Attenuator — 5dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"LC/UPC", "5dB", "SM", "Male-Female"}, Price: 3.99, CompareAt: model.Price(6.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AT-LC-10DB", Name: "LC/UPC Fixed Attenuator — 10dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"LC/UPC", "10dB", "SM", "Male-Female"}, Price: 3.99, CompareAt: model.Price(6.5), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-AT-SC-5DB", Name: "SC/UPC Fixed Attenuator — 5dB", Category: "adapters", Subcategory: "fixed-attenuators", Specs: []string{"SC/UPC", "5dB", "SM", "Male-Female"}, Price: 3.99, CompareAt: model.Price(6.5), InStock: true, QuickShip: true, Tier: model.TierB},

		// Splitters
		{SKU: "NX-SPL-PLC-1X2-SC", Name: "PLC Splitter 1×2 SC/APC — Blockless", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×2", "SC/APC", "Blockless", "IL ≤4.0dB"}, Price: 6.99, CompareAt: model.Price(11), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SPL-PLC-1X4-SC", Name: "PLC Splitter 1×4 SC/APC — Blockless", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×4", "SC/APC", "Blockless", "IL ≤7.4dB"}, Price: 8.99, CompareAt: model.Price(14), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SPL-PLC-1X8-SC", Name: "PLC Splitter 1×8 SC/APC — Blockless", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×8", "SC/APC", "Blockless", "IL ≤10.5dB"}, Price: 12.99, CompareAt: model.Price(20), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBEADReady},
		{SKU: "NX-SPL-PLC-1X16-SC", Name: "PLC Splitter 1×16 SC/APC — Rack-Mount", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×16", "SC/APC", "1U Rack", "IL ≤13.5dB"}, Price: 29.99, CompareAt: model.Price(45), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SPL-PLC-1X32-SC", Name: "PLC Splitter 1×32 SC/APC — Rack-Mount", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×32", "SC/APC", "1U Rack", "IL ≤16.5dB"}, Price: 49.99, CompareAt: model.Price(75), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-SPL-PLC-1X64-SC", Name: "PLC Splitter 1×64 SC/APC — Rack-Mount", Category: "adapters", Subcategory: "plc-splitters", Specs: []string{"1×64", "SC/APC", "2U Rack", "IL ≤20.5dB"}, Price: 89.99, CompareAt: model.Price(130), InStock: true, QuickShip: true, Tier: model.TierB},

		// Loopbacks
		{SKU: "NX-LB-LC-SM", Name: "LC/UPC Singlemode Loopback Plug", Category: "adapters", Subcategory: "loopbacks", Specs: []string{"LC/UPC", "Singlemode", "9/125μm", "Test"}, Price: 4.99, CompareAt: model.Price(8), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-LB-SC-SM", Name: "SC/UPC Singlemode Loopback Plug", Category: "adapters", Subcategory: "loopbacks", Specs: []string{"SC/UPC", "Singlemode", "9/125μm", "Test"}, Price: 4.99, CompareAt: model.Price(8), InStock: true, QuickShip: true, Tier: model.TierB},
		{SKU: "NX-LB-MPO-12-SM", Name: "MPO-12 Singlemode Loopback", Category: "adapters", Subcategory: "loopbacks", Specs: []string{"MPO-12", "Singlemode", "Type A", "Test"}, Price: 19.99, CompareAt: model.Price(30), InStock: true, QuickShip: true, Tier: model.TierB},
	}
}

func testEquipment() []model.Product {
	return []model.Product{
		{SKU: "NX-VFL-5MW", Name: "Visual Fault Locator 5mW — Pen Style", Category: "test-equipment", Subcategory: "vfl", Specs: []string{"5mW", "650nm Red", "2.5mm Universal", "5km Range"}, Price: 12.99, CompareAt: model.Price(22), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-VFL-10MW", Name: "Visual Fault Locator 10mW — Pro", Category: "test-equipment", Subcategory: "vfl", Specs: []string{"10mW", "650nm Red", "2.5mm + 1.25mm", "10km Range"}, Price: 18.99, CompareAt: model.Price(30), InStock: true, QuickShip: true, Tier: model.TierA, Badge: model.BadgeBestSeller},
		{SKU: "NX-VFL-30MW", Name: "Visual Fault Locator 30mW — Long Range", Category: "test-equipment", Subcategory: "vfl", Specs: []string{"30mW", "650nm Red", "2.5mm + 1.25mm", "25km Range"}, Price: 29.99, CompareAt: model.Price(48), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-OPM-BASIC", Name: "Optical Power Meter — Basic", Category: "test-equipment", Subcategory: "power-meters", Specs: []string{"-50 to +26 dBm", "850/1300/1310/1490/1550/1625nm", "FC/SC/ST", "Battery"}, Price: 29.99, CompareAt: model.Price(50), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-OPM-PRO", Name: "Optical Power Meter — Pro Series", Category: "test-equipment", Subcategory: "power-meters", Specs: []string{"-70 to +10 dBm", "6 Wavelengths", "FC/SC/ST", "Rechargeable"}, Price: 39.99, CompareAt: model.Price(65), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-LS-SM-1310-1550", Name: "Stabilized Light Source SM — 1310/1550nm", Category: "test-equipment", Subcategory: "light-sources", Specs: []string{"1310nm + 1550nm", "Singlemode", "SC/FC/ST", "CW/Modulated"}, Price: 59.99, CompareAt: model.Price(95), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-LS-MM-850-1300", Name: "Stabilized Light Source MM — 850/1300nm", Category: "test-equipment", Subcategory: "light-sources", Specs: []string{"850nm + 1300nm", "Multimode", "SC/FC/ST", "CW/Modulated"}, Price: 59.99, CompareAt: model.Price(95), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-FI-400", Name: "Fiber Identifier — Live Traffic Detection", Category: "test-equipment", Subcategory: "identifiers", Specs: []string{"250/900μm + Jacketed", "Directional", "Live Traffic Safe", "Rechargeable"}, Price: 129.99, CompareAt: model.Price(200), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SCOPE-400X", Name: "Fiber Inspection Scope 400× — Handheld", Category: "test-equipment", Subcategory: "inspection", Specs: []string{"400× Magnification", "2.5mm + 1.25mm", "LED Illumination", "Portable"}, Price: 149.99, CompareAt: model.Price(240), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-SCOPE-VIDEO", Name: "Video Fiber Inspection Probe — USB", Category: "test-equipment", Subcategory: "inspection", Specs: []string{"400× Digital", "USB-C", "Auto-Focus", "Pass/Fail Analysis"}, Price: 399.99, CompareAt: model.Price(650), InStock: true, QuickShip: true, Tier: model.TierB},

		// Cleaning
		{SKU: "NX-CLEAN-LC-CLICK", Name: "LC One-Click Cleaner — 1.25mm", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"1.25mm Ferrule", "800+ Cleans", "LC/MU", "No Alcohol"}, Price: 6.99, CompareAt: model.Price(10), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAN-SC-CLICK", Name: "SC One-Click Cleaner — 2.5mm", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"2.5mm Ferrule", "500+ Cleans", "SC/FC/ST", "No Alcohol"}, Price: 6.99, CompareAt: model.Price(10), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAN-MPO-CLICK", Name: "MPO One-Click Cleaner", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"MPO/MTP", "500+ Cleans", "12/24 Fiber", "No Alcohol"}, Price: 11.99, CompareAt: model.Price(18), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAN-CASSETTE", Name: "Cassette Cleaner — Reel Type", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"All Ferrule Sizes", "500+ Cleans", "Dry Clean", "Compact"}, Price: 14.99, CompareAt: model.Price(22), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-KIT-CLEAN-PRO", Name: "Fiber Cleaning Kit — Professional", Category: "test-equipment", Subcategory: "cleaning", Specs: []string{"LC + SC Cleaners", "IPA Wipes", "Lint-Free Swabs", "Case"}, Price: 34.99, CompareAt: model.Price(55), InStock: true, QuickShip: true, Tier: model.TierA},

		// Cleavers and prep tools
		{SKU: "NX-CLEAVE-BASIC", Name: "Fiber Cleaver — 16-Position Blade", Category: "test-equipment", Subcategory: "cleavers", Specs: []string{"16 Positions", "125μm Fiber", "Cleave Angle ≤0.5°", "48K Cleaves"}, Price: 49.99, CompareAt: model.Price(80), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-CLEAVE-PRO", Name: "Fiber Cleaver — Auto-Rotate 36-Position", Category: "test-equipment", Subcategory: "cleavers", Specs: []string{"36 Positions", "Auto-Rotate", "250/900μm", "100K+ Cleaves"}, Price: 129.99, CompareAt: model.Price(200), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-STRIP-3HOLE", Name: "Fiber Stripping Tool — 3-Hole", Category: "test-equipment", Subcategory: "stripping", Specs: []string{"125μm, 250μm, 900μm", "Adjustable", "Ergonomic Grip"}, Price: 12.99, CompareAt: model.Price(20), InStock: true, QuickShip: true, Tier: model.TierA},
		{SKU: "NX-STRIP-CFS2", Name: "Buffer Tube / Cable Jacket Stripper", Category: "test-equipment", Subcategory: "stripping", Specs: []string{"Adjustable Depth", "Round Cable", "Rip Cord Slot"}, Price: 18.99, CompareAt: model.Price(30), InStock: true, QuickShip: true, Tier: model.TierA},
	}
}
