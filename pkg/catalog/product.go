package catalog

// Product is one catalog entry as the engines see it.
type Product struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Purity      float64 `json:"purity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "all"

// CategoryRecovery is the tag the chat assistant recommends for recovery questions.
const CategoryRecovery = "recovery"

// FallbackProducts returns the built-in catalog used when the data source is
// unavailable or empty. A fresh slice is returned on every call.
func FallbackProducts() []Product {
	return []Product{
		{Name: "BPC-157", Purity: 99.5, Price: 55, Category: "recovery", Description: "Standard stable gastric pentadecapeptide."},
		{Name: "TB-500", Purity: 99.2, Price: 65, Category: "recovery", Description: "Synthetic fraction of protein thymosin beta-4."},
		{Name: "Semaglutide", Purity: 99.0, Price: 120, Category: "muscle", Description: "GLP-1 agonist for metabolic regulation."},
		{Name: "Cerebrolysin", Purity: 98.5, Price: 85, Category: "cognitive", Description: "Neurotrophic peptide for brain health."},
		{Name: "GHK-Cu", Purity: 99.8, Price: 45, Category: "skin", Description: "Copper peptide for skin remodeling."},
		{Name: "Epitalon", Purity: 99.9, Price: 210, Category: "cognitive", Description: "Telomerase activator for longevity."},
	}
}

// Names returns the product names in order.
func Names(products []Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}
