package database

import "fmt"

// demoProducts is a small catalog covering every domain partition so a
// freshly seeded store exercises all facets.
var demoProducts = []struct {
	ID, Name, Description, Price, Category, Slug     string
	Stock                                            int
	Brand, Sensation, SizeML, Format, Filter, Target string
}{
	{"4f1c2d10-0001-4a7e-9c1a-000000000001", "Olio da massaggio vaniglia", "Olio riscaldante profumato alla vaniglia", "19.90", "Benessere", "olio-massaggio-vaniglia", 25, "Velora", "Riscaldante", "100", "", "Corpo", "Coppia"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000002", "Lubrificante effetto freddo", "Gel a base acquosa effetto rinfrescante", "12.50", "Lubrificanti", "lubrificante-effetto-freddo", 40, "Velora", "Rinfrescante", "75", "", "Intimo", "Unisex"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000003", "Fragranza ambra e muschio", "Profumo d'ambiente persistente", "24.00", "Fragranze", "fragranza-ambra-muschio", 15, "Noir", "", "50", "", "Ambiente", "Unisex"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000004", "Cioccolato fondente da sciogliere", "Cioccolato alimentare per il gioco di coppia", "14.90", "Commestibili", "cioccolato-fondente", 30, "", "", "", "Tavoletta 120g", "Cioccolato", "Coppia"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000005", "Caramelle alla fragola", "Caramelle commestibili aromatizzate", "8.90", "Commestibili", "caramelle-fragola", 50, "", "", "", "Confezione 200g", "Fragola", "Coppia"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000006", "Dadi delle coppie", "Dadi con prove e ricompense", "9.90", "Giochi", "dadi-delle-coppie", 60, "", "", "", "Set 2 dadi", "Dadi", "Coppia"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000007", "Carte scoperta", "Mazzo di carte con domande progressive", "15.00", "Giochi", "carte-scoperta", 35, "", "", "", "Mazzo 54 carte", "Carte", "Gruppo"},
	{"4f1c2d10-0001-4a7e-9c1a-000000000008", "Candela da massaggio", "Candela che si scioglie in olio caldo", "21.00", "Candele", "candela-da-massaggio", 20, "Velora", "Riscaldante", "", "Vasetto 80g", "Corpo", "Coppia"},
}

var demoCoupons = []struct {
	Code, DiscountType string
	Value              float64
}{
	{"BENVENUTO10", "percentage", 10},
	{"ESTATE5", "fixed", 5},
}

// SeedDemoData inserts the demo catalog and coupons, skipping rows that
// already exist.
func (db *DB) SeedDemoData() (int, error) {
	inserted := 0
	for _, p := range demoProducts {
		res, err := db.Exec(`
			INSERT IGNORE INTO products (
				id, name, description, price, category, slug, stock,
				brand, sensation, size_ml, format, product_filter, target_audience
			) VALUES (?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))`,
			p.ID, p.Name, p.Description, p.Price, p.Category, p.Slug, p.Stock,
			p.Brand, p.Sensation, p.SizeML, p.Format, p.Filter, p.Target,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed product %s: %w", p.Slug, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	for _, c := range demoCoupons {
		_, err := db.Exec(`
			INSERT IGNORE INTO coupons (code, discount_type, value) VALUES (?, ?, ?)`,
			c.Code, c.DiscountType, c.Value,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed coupon %s: %w", c.Code, err)
		}
	}

	return inserted, nil
}
