package config

// DefaultLevelThresholds is the stock 33-entry table: cumulative earnings
// required per level. Index 0 is unused. Values above 25M grow 5x per level,
// which keeps late levels meaningful under exponential production growth.
func DefaultLevelThresholds() []float64 {
	return []float64{
		0, 100, 500, 2000, 10000, 50000, 250000, 1e6, 5e6, 25e6,
		1e8, 5e8, 2.5e9, 1.25e10, 6.25e10,
		3.125e11, 1.5625e12, 7.8125e12, 3.90625e13, 1.953125e14,
		9.765625e14, 4.8828125e15, 2.44140625e16, 1.220703125e17,
		6.103515625e17, 3.0517578125e18, 1.52587890625e19,
		7.62939453125e19, 3.814697265625e20, 1.9073486328125e21,
		9.5367431640625e21, 4.76837158203125e22, 2.384185791015625e23,
	}
}

// Default returns the stock "syndicate" variant. Other variants load from
// yaml and only need to replace the tables they change.
func Default() *Variant {
	v := &Variant{
		Key:            "syndicate",
		Name:           "The Syndicate",
		CurrencyName:   "Hash Units",
		CurrencySymbol: "HU",
		Tiers: []Tier{
			{Name: "Street-Level Operations", Role: "Street Dealer", Description: "The seed is planted. Now, nurture it."},
			{Name: "Production & Local Commerce", Role: "Local Entrepreneur", Description: "From clandestine to clandestine chic."},
			{Name: "Regional Expansion", Role: "Regional Coordinator", Description: "The tentacles spread. Europe awaits."},
			{Name: "National Influence", Role: "Media Manipulator", Description: "Perception is reality. And we own reality."},
			{Name: "Global Power", Role: "Shadow Diplomat", Description: "The world dances to our tune."},
			{Name: "The Illumination", Role: "Grand Architect", Description: "The Eye watches. The Empire endures."},
		},
		Upgrades: map[string][]Upgrade{
			"production": {
				{ID: "young_dealer", Name: "The Young Dealer", Description: "Street kid with a cyber-leg.", BaseCost: 15, UnlockLevel: 1, Effect: Effect{Kind: EffectRate, Value: 0.1}},
				{ID: "street_corner", Name: "Street Corner Stand", Description: "Prime real estate.", BaseCost: 100, UnlockLevel: 2, Effect: Effect{Kind: EffectRate, Value: 1}},
				{ID: "local_network", Name: "Local Network", Description: "Word of mouth.", BaseCost: 500, UnlockLevel: 3, Effect: Effect{Kind: EffectRate, Value: 5}},
				{ID: "bicycle_delivery", Name: "Bicycle Delivery", Description: "Silent distribution.", BaseCost: 2000, UnlockLevel: 4, Effect: Effect{Kind: EffectRate, Value: 20}},
				{ID: "hashish_bakery", Name: "Hashish Bakery", Description: "Special cakes.", BaseCost: 10000, UnlockLevel: 6, Effect: Effect{Kind: EffectRate, Value: 100}},
				{ID: "coffee_shop", Name: "Coffee Shop Front", Description: "Perfect cover.", BaseCost: 25000, UnlockLevel: 7, Effect: Effect{Kind: EffectRate, Value: 250}},
				{ID: "dispensary", Name: "Discreet Dispensary", Description: "Medical license.", BaseCost: 75000, UnlockLevel: 8, Effect: Effect{Kind: EffectRate, Value: 750}},
				{ID: "urban_grow", Name: "Urban Grow-Op", Description: "Vertical farming.", BaseCost: 200000, UnlockLevel: 9, Effect: Effect{Kind: EffectRate, Value: 2000}},
				{ID: "courier_network", Name: "Courier Network", Description: "Professional logistics.", BaseCost: 500000, UnlockLevel: 11, Effect: Effect{Kind: EffectRate, Value: 5000}},
				{ID: "hidden_warehouses", Name: "Hidden Warehouses", Description: "Storage in plain sight.", BaseCost: 1.5e6, UnlockLevel: 12, Effect: Effect{Kind: EffectRate, Value: 15000}},
				{ID: "port_connections", Name: "Port Connections", Description: "Morocco to Europe.", BaseCost: 5e6, UnlockLevel: 13, Effect: Effect{Kind: EffectRate, Value: 50000}, OneShotBonus: 0.1},
				{ID: "poznan_hub", Name: "The Poznan Hub", Description: "Central distribution.", BaseCost: 1.5e7, UnlockLevel: 14, Effect: Effect{Kind: EffectRate, Value: 150000}, OneShotBonus: 0.15},
			},
			"distribution": {
				{ID: "encrypted_comms", Name: "Encrypted Comms", Description: "Secure channels.", BaseCost: 1000, UnlockLevel: 3, Effect: Effect{Kind: EffectMultiplier, Value: 0.5}},
				{ID: "supply_chain", Name: "Supply Chain Opt.", Description: "Efficiency tech.", BaseCost: 50000, UnlockLevel: 8, Effect: Effect{Kind: EffectMultiplier, Value: 0.25}},
				{ID: "dark_web_market", Name: "Dark Web Market", Description: "Digital expansion.", BaseCost: 500000, UnlockLevel: 12, Effect: Effect{Kind: EffectMultiplier, Value: 0.5},
					PathChoice: &PathChoice{
						Prompt: "Choose your path for Dark Web Market",
						Options: []PathOption{
							{Key: "underground", Label: "Underground (High Risk/Reward)", Bonus: 0.3},
							{Key: "semi_legal", Label: "Semi-Legal (Safer Growth)", Bonus: 0.1},
						},
					}},
			},
			"influence": {
				{ID: "local_politician", Name: "Local Politician", Description: "Friend in city hall.", BaseCost: 100000, UnlockLevel: 10, Effect: Effect{Kind: EffectMultiplier, Value: 0.1}},
				{ID: "media_influence", Name: "Media Influence", Description: "Shaping opinion.", BaseCost: 1e6, UnlockLevel: 15, Effect: Effect{Kind: EffectMultiplier, Value: 0.2}},
				{ID: "think_tank", Name: "Think Tank", Description: "Academic legitimacy.", BaseCost: 1e7, UnlockLevel: 20, Effect: Effect{Kind: EffectMultiplier, Value: 1.0}},
			},
		},
		EventPools: [][]Event{
			{
				{ID: "t1_e1", Title: "First Sale Success", Weight: 40, Options: []EventOption{
					{Text: "Accept Payment", RewardType: RewardMult, RewardValue: 1.15},
					{Text: "Hold Out", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t1_e2", Title: "Got a Regular Customer", Weight: 35, Options: []EventOption{
					{Text: "Offer Discount", RewardType: RewardMult, RewardValue: 1.25},
					{Text: "Keep Price", RewardType: RewardMult, RewardValue: 1.1},
				}},
				{ID: "t1_e3", Title: "Street Vendor Tip", Weight: 15, Options: []EventOption{
					{Text: "Follow Tip", RewardType: RewardFlat, RewardValue: 200},
					{Text: "Ignore", RewardType: RewardMult, RewardValue: 1.02},
				}},
				{ID: "t1_e4", Title: "Local Flyer Distribution", Weight: 6, Options: []EventOption{
					{Text: "Invest 10%", CostFraction: 0.1, RewardType: RewardMult, RewardValue: 1.35},
					{Text: "Pass", RewardType: RewardMult, RewardValue: 1.01},
				}},
				{ID: "t1_e5", Title: "Friendly Rival", Weight: 3, Options: []EventOption{
					{Text: "Share Leads", RewardType: RewardFlat, RewardValue: 500},
					{Text: "Compete", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t1_e6", Title: "Hidden Cache", Weight: 1, Options: []EventOption{
					{Text: "Take It", RewardType: RewardFlat, RewardValue: 2000},
					{Text: "Report", RewardType: RewardMult, RewardValue: 1.0},
				}},
			},
			{
				{ID: "t2_e1", Title: "Police Patrol (Mild)", Weight: 30, Options: []EventOption{
					{Text: "Lay Low", CostFraction: 0.05, RewardType: RewardMult, RewardValue: 1.15},
					{Text: "Ignore", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t2_e2", Title: "New Market Opportunity", Weight: 30, Options: []EventOption{
					{Text: "Invest 20%", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.4},
					{Text: "Invest 10%", CostFraction: 0.1, RewardType: RewardMult, RewardValue: 1.2},
				}},
				{ID: "t2_e3", Title: "Supplier Issues (Mild)", Weight: 20, Options: []EventOption{
					{Text: "Find New Supplier", CostFraction: 0.1, RewardType: RewardMult, RewardValue: 1.15},
					{Text: "Wait", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t2_e4", Title: "Local Promotion", Weight: 10, Options: []EventOption{
					{Text: "Run Promo", CostFraction: 0.05, RewardType: RewardFlat, RewardValue: 2000},
					{Text: "Skip", RewardType: RewardMult, RewardValue: 1.02},
				}},
				{ID: "t2_e5", Title: "Informant Tip", Weight: 7, Options: []EventOption{
					{Text: "Follow", CostFraction: 0.02, RewardType: RewardFlat, RewardValue: 5000},
					{Text: "Ignore", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t2_e6", Title: "Rare: Local Festival", Weight: 1, Options: []EventOption{
					{Text: "Capitalize", CostFraction: 0.15, RewardType: RewardFlat, RewardValue: 20000},
					{Text: "Sit Out", RewardType: RewardMult, RewardValue: 1.0},
				}},
			},
			{
				{ID: "t3_e1", Title: "Police Raid (High Stakes)", Weight: 30, Options: []EventOption{
					{Text: "Pay Bribe", CostFraction: 0.3, RewardType: RewardMult, RewardValue: 1.5},
					{Text: "Evade", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.2},
					{Text: "Surrender Stash", CostFraction: 0.5, RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t3_e2", Title: "Market Consolidation", Weight: 25, Options: []EventOption{
					{Text: "Merge Aggressively", CostFraction: 0.4, RewardType: RewardMult, RewardValue: 2.0},
					{Text: "Friendly Merge", CostFraction: 0.25, RewardType: RewardMult, RewardValue: 1.6},
					{Text: "Decline", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t3_e3", Title: "Rival Territory War", Weight: 20, Options: []EventOption{
					{Text: "Fortify", CostFraction: 0.35, RewardType: RewardMult, RewardValue: 1.8},
					{Text: "Negotiate", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.4},
					{Text: "Retreat", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t3_e4", Title: "Supply Chain Windfall", Weight: 15, Options: []EventOption{
					{Text: "Invest Returns", RewardType: RewardFlat, RewardValue: 50000},
					{Text: "Pocket", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t3_e5", Title: "Regional Partnership", Weight: 8, Options: []EventOption{
					{Text: "Form Alliance", CostFraction: 0.2, RewardType: RewardTokens, RewardValue: 2},
					{Text: "Solo", RewardType: RewardMult, RewardValue: 1.05},
				}},
				{ID: "t3_e6", Title: "Rare: Hidden Investor", Weight: 2, Options: []EventOption{
					{Text: "Accept Funding", CostFraction: 0.3, RewardType: RewardFlat, RewardValue: 150000},
					{Text: "Decline", RewardType: RewardMult, RewardValue: 1.0},
				}},
			},
			{
				{ID: "t4_e1", Title: "Geopolitical Crisis", Weight: 28, Options: []EventOption{
					{Text: "Exploit Crisis", CostFraction: 0.45, RewardType: RewardMult, RewardValue: 2.5},
					{Text: "Hedge", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.5},
					{Text: "Wait", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t4_e2", Title: "DEA Manhunt", Weight: 25, Options: []EventOption{
					{Text: "Pay Informants", CostFraction: 0.5, RewardType: RewardMult, RewardValue: 1.8},
					{Text: "Go Underground", CostFraction: 0.25, RewardType: RewardMult, RewardValue: 1.4},
					{Text: "Skip Prestige", RewardType: RewardMult, RewardValue: 0},
				}},
				{ID: "t4_e3", Title: "Media Scandal", Weight: 20, Options: []EventOption{
					{Text: "Spin Narrative", CostFraction: 0.4, RewardType: RewardMult, RewardValue: 2.0},
					{Text: "Keep Silent", CostFraction: 0.1, RewardType: RewardMult, RewardValue: 1.1},
				}},
				{ID: "t4_e4", Title: "Corporate Espionage", Weight: 12, Options: []EventOption{
					{Text: "Counter-Hack", CostFraction: 0.3, RewardType: RewardFlat, RewardValue: 100000},
					{Text: "Pay Off", CostFraction: 0.25, RewardType: RewardMult, RewardValue: 1.3},
				}},
				{ID: "t4_e5", Title: "Market Boom", Weight: 4, Options: []EventOption{
					{Text: "Scale Fast", CostFraction: 0.35, RewardType: RewardFlat, RewardValue: 300000},
					{Text: "Consolidate", RewardType: RewardMult, RewardValue: 1.2},
				}},
				{ID: "t4_e6", Title: "Rare: International Leak", Weight: 1, Options: []EventOption{
					{Text: "Leverage", RewardType: RewardTokens, RewardValue: 5},
					{Text: "Suppress", RewardType: RewardMult, RewardValue: 1.0},
				}},
			},
			{
				{ID: "t5_e1", Title: "International Cartel Conflict", Weight: 30, Options: []EventOption{
					{Text: "Forge Alliance", CostFraction: 0.6, RewardType: RewardMult, RewardValue: 3.2},
					{Text: "Play Both Sides", CostFraction: 0.35, RewardType: RewardMult, RewardValue: 2.0},
					{Text: "Neutrality", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t5_e2", Title: "Data Breach Risk", Weight: 25, Options: []EventOption{
					{Text: "Hire Hackers", CostFraction: 0.5, RewardType: RewardMult, RewardValue: 2.5},
					{Text: "DIY", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.4},
				}},
				{ID: "t5_e3", Title: "Illuminati Recruitment", Weight: 20, Options: []EventOption{
					{Text: "Accept", CostFraction: 1.0, RewardType: RewardTokens, RewardValue: 5},
					{Text: "Decline", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t5_e4", Title: "Global Market Surge", Weight: 15, Options: []EventOption{
					{Text: "All-In", CostFraction: 0.5, RewardType: RewardFlat, RewardValue: 1e6},
					{Text: "Hedge", CostFraction: 0.2, RewardType: RewardMult, RewardValue: 1.3},
				}},
				{ID: "t5_e5", Title: "Legendary: World Summit Invite", Weight: 7, Options: []EventOption{
					{Text: "Attend", CostFraction: 0.4, RewardType: RewardTokens, RewardValue: 10},
					{Text: "Decline", RewardType: RewardMult, RewardValue: 1.0},
				}},
				{ID: "t5_e6", Title: "Secret Vault Discovery", Weight: 3, Options: []EventOption{
					{Text: "Open", RewardType: RewardFlat, RewardValue: 2e6},
					{Text: "Seal", RewardType: RewardMult, RewardValue: 1.0},
				}},
			},
		},
		TokenShop: []ShopItem{
			{ID: "token_doubler", Title: "Token Doubler", Description: "Next prestige: 3x token payout", Cost: 10, Kind: ShopRush},
			{ID: "perm_token_doubler", Title: "Dimensional Echo", Description: "Prestige now earns 2x tokens (permanent)", Cost: 30, Kind: ShopPermDoubler},
			{ID: "auto_prestige", Title: "Auto-Prestige", Description: "Auto-prestige trigger at high level (enable in settings)", Cost: 50, Kind: ShopAutoPrestige},
		},
	}
	v.ApplyDefaults()
	return v
}
