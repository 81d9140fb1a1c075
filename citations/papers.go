// Package citations carries the nanotechnology-in-agriculture paper
// collection this library was written around: ten real publications
// spanning 2017-2024 and the citation relationships between them.
//
// Nodes are indexed chronologically, 0 for the oldest paper. An edge
// (u, v) means paper u cites paper v, so a topological sort lists
// citing papers first; ReadingOrder reverses it to put foundational
// work first.
package citations

import (
	citegraph "github.com/hashicorp/go-citegraph"
)

// Node indices of the papers, in chronological order.
const (
	MicrobiomeStudy2017 = iota
	CropProtection2019
	SustainableAg2020
	CarrotExperiment2021
	Nanofertilizers2022
	InnovationsReview2023
	PrecisionAg2023
	MicrobeInteractions2024
	BionanoFertilizers2024
	ClimateReview2024
)

// Paper describes one publication in the collection.
type Paper struct {
	// Key is a short stable identifier used in reports and filenames.
	Key string

	Title       string
	Authors     string
	Year        int
	Venue       string
	DOI         string
	Description string
}

// edges lists the citation relationships as (citing, cited) pairs.
var edges = [][2]int{
	{ClimateReview2024, BionanoFertilizers2024},
	{ClimateReview2024, MicrobeInteractions2024},
	{MicrobeInteractions2024, InnovationsReview2023},
	{InnovationsReview2023, CarrotExperiment2021},
	{PrecisionAg2023, Nanofertilizers2022},
	{MicrobeInteractions2024, PrecisionAg2023},
	{PrecisionAg2023, CropProtection2019},
	{Nanofertilizers2022, SustainableAg2020},
	{Nanofertilizers2022, MicrobiomeStudy2017},
	{SustainableAg2020, CropProtection2019},
	{CropProtection2019, MicrobiomeStudy2017},
}

var papers = []Paper{
	{
		Key:         "microbiome_study_2017",
		Title:       "Combined pre-seed treatment with microbial inoculants and Mo nanoparticles changes composition of root exudates and rhizosphere microbiome structure of chickpea (Cicer arietinum L.) plants",
		Authors:     "E. N. Shcherbakova, A. V. Shcherbakov, E. E. Andronov, L. N. Gonchar, S. M. Kalenskaya et al.",
		Year:        2017,
		Venue:       "Symbiosis",
		DOI:         "https://doi.org/10.1007/s13199-016-0472-1",
		Description: "Experimental study on nanoparticle effects on plant microbiome",
	},
	{
		Key:         "crop_protection_2019",
		Title:       "Nano-enabled strategies to enhance crop nutrition and protection",
		Authors:     "Melanie Kah, Nathalie Tufenkji, Jason C. White",
		Year:        2019,
		Venue:       "Nature Nanotechnology",
		DOI:         "https://doi.org/10.1038/s41565-019-0439-5",
		Description: "Comprehensive review of nanotechnology in agriculture",
	},
	{
		Key:         "sustainable_ag_2020",
		Title:       "Nanoparticle-Based Sustainable Agriculture and Food Science: Recent Advances and Future Outlook",
		Authors:     "Deepti Mittal, Gurjeet Kaur, Parul Singh, Syed Azmal Ali",
		Year:        2020,
		Venue:       "Frontiers in Nanotechnology",
		DOI:         "https://doi.org/10.3389/fnano.2020.579954",
		Description: "Review of recent advances in agricultural nanotechnology",
	},
	{
		Key:         "carrot_experiment_2021",
		Title:       "Effects of different surface-coated nTiO2 on full-grown carrot plants: impacts on root splitting, essential elements and Ti uptake",
		Authors:     "Yi Wang, Chaoyi Deng, Keni Cota-Ruiz, Wenjuan Tan, Andres Reyes et al.",
		Year:        2021,
		Venue:       "Journal of Hazardous Materials",
		DOI:         "https://doi.org/10.1016/j.jhazmat.2020.123768",
		Description: "Experimental study on nanoparticle effects on plant growth",
	},
	{
		Key:         "nanofertilizers_2022",
		Title:       "Nanofertilizers: A Smart and Sustainable Attribute to Modern Agriculture",
		Authors:     "Amilia Nongbet, Avdhesh Kumar Mishra, Yugal Kishore Mohanta, Saurov Mahanta, Manjit Kumar Ray et al.",
		Year:        2022,
		Venue:       "Plants",
		DOI:         "https://doi.org/10.3390/plants11192587",
		Description: "Review focusing on nanofertilizer applications",
	},
	{
		Key:         "innovations_review_2023",
		Title:       "Revolutionizing agriculture: harnessing nano-innovations for sustainable farming and environmental preservation",
		Authors:     "Sajad Mohammadi, Farzaneh Jabbari, Gianluca Cidonio, Valiollah Babaeipour",
		Year:        2023,
		Venue:       "Pesticide Biochemistry and Physiology",
		DOI:         "https://doi.org/10.1016/j.pestbp.2023.105722",
		Description: "Comprehensive review of nano-innovations in agriculture",
	},
	{
		Key:         "precision_ag_2023",
		Title:       "Unlocking the Potential of Nano-Enabled Precision Agriculture for Efficient and Sustainable Farming",
		Authors:     "Vinod Goyal, Dolly Rani, Rittika Rani, Shweta Mehrotra, Chaoyi Deng, Yi Wang",
		Year:        2023,
		Venue:       "Plants",
		DOI:         "https://doi.org/10.3390/plants12213744",
		Description: "Review focusing on precision agriculture applications",
	},
	{
		Key:         "microbe_interactions_2024",
		Title:       "Nanoparticle applications in agriculture: overview and response of plant-associated microorganisms",
		Authors:     "Katiso Mgadi, Busiswa Ndaba, Ashira Roopnarain, Haripriya Rama, Rasheed Adeleke",
		Year:        2024,
		Venue:       "Frontiers in Microbiology",
		DOI:         "https://doi.org/10.3389/fmicb.2024.1354440",
		Description: "Latest research on nanoparticle-microorganism interactions",
	},
	{
		Key:         "bionano_fertilizers_2024",
		Title:       "Next-generation fertilizers: the impact of bionanofertilizers on sustainable agriculture",
		Authors:     "Pankaj Kumar Arora, Shivam Tripathi, Rishabh Anand Omar, Prerna Chauhan, Vijay Kumar Sinhal et al.",
		Year:        2024,
		Venue:       "Microbial Cell Factories",
		DOI:         "https://doi.org/10.1186/s12934-024-02528-5",
		Description: "Specialized review on bionanofertilizers",
	},
	{
		Key:         "climate_review_2024",
		Title:       "Advances in Nanotechnology for Sustainable Agriculture: A Review of Climate Change Mitigation",
		Authors:     "Valentina Quintarelli, Monia Ben Hassine, Emanuele Radicetti, Silvia Rita Stazi, Enrica Allevato et al.",
		Year:        2024,
		Venue:       "Sustainability",
		DOI:         "https://doi.org/10.3390/su16219280",
		Description: "Most recent comprehensive review including climate aspects",
	},
}

// Papers returns the full paper collection, indexed by node.
func Papers() []Paper {
	out := make([]Paper, len(papers))
	copy(out, papers)
	return out
}

// Graph builds the citation graph: an edge (u, v) for every paper u
// that cites paper v.
func Graph() *citegraph.Graph {
	g := citegraph.New(len(papers))
	for _, e := range edges {
		// The edge table is static and in range, so AddEdge cannot
		// fail here.
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}

	return g
}

// ReadingOrder returns the papers in dependency-respecting reading
// order: every paper appears after all the papers it cites. This is
// the reverse of the topological order of the citation graph, since
// edges run citing to cited.
func ReadingOrder() ([]int, error) {
	order, err := Graph().Sort()
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
