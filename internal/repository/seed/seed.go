// Package seed содержит стартовый каталог лондонских музеев и
// предустановленные пешеходные туры. Каталог засевается только в пустое
// хранилище; туры перезаписываются при каждом старте - они авторские и
// не редактируются через API.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
)

// Apply засевает каталог и предустановленные туры.
func Apply(
	ctx context.Context,
	museumRepo repository.MuseumRepository,
	tourRepo repository.TourRepository,
	seedCatalog bool,
	logger *zap.Logger,
) error {
	if seedCatalog {
		count, err := museumRepo.Count(ctx)
		if err != nil {
			return err
		}

		if count == 0 {
			now := time.Now().UTC()
			for _, m := range Museums() {
				m.CreatedAt = now
				if err := museumRepo.Insert(ctx, &m); err != nil {
					return err
				}
			}
			logger.Info("Catalog seeded", zap.Int("museums", len(Museums())))
		}
	}

	tours := Tours()
	if err := tourRepo.SetPredefined(ctx, tours); err != nil {
		return err
	}
	logger.Info("Predefined tours loaded", zap.Int("tours", len(tours)))

	return nil
}

// Tours - предустановленные маршруты. Порядок museum_ids - порядок посещения.
func Tours() []domain.Tour {
	return []domain.Tour{
		{
			ID:          "classic-london",
			Kind:        domain.TourKindPredefined,
			Name:        "Classic London Highlights",
			Description: "The unmissable trio: ancient treasures, Western masterpieces and 900 years of royal history.",
			Duration:    "Full day",
			Distance:    "6.5 km",
			Color:       "#E63946",
			MuseumIDs:   []string{"1", "6", "7"},
		},
		{
			ID:          "south-kensington",
			Kind:        domain.TourKindPredefined,
			Name:        "South Kensington Trio",
			Description: "Three world-class museums within a ten minute walk of each other.",
			Duration:    "4-5 hours",
			Distance:    "1.2 km",
			Color:       "#457B9D",
			MuseumIDs:   []string{"2", "3", "4"},
		},
		{
			ID:          "riverside-art",
			Kind:        domain.TourKindPredefined,
			Name:        "Riverside Art Walk",
			Description: "Modern art on Bankside, then across the river to Trafalgar Square.",
			Duration:    "Half day",
			Distance:    "2.8 km",
			Color:       "#F1A208",
			MuseumIDs:   []string{"5", "6"},
		},
	}
}

// Museums - стартовый набор лондонских музеев.
func Museums() []domain.Museum {
	return []domain.Museum{
		{
			ID:               "1",
			Name:             "British Museum",
			Description:      "The British Museum is one of the world's most famous museums, housing a vast collection of world art and artifacts spanning over two million years of history. Highlights include the Rosetta Stone, the Elgin Marbles, and Egyptian mummies. The museum's stunning Great Court, designed by Norman Foster, is the largest covered public square in Europe.",
			ShortDescription: "World-famous museum with over 8 million artifacts from all continents",
			Address:          "Great Russell Street, London WC1B 3DG",
			Latitude:         51.5194,
			Longitude:        -0.1269,
			ImageURL:         "https://images.unsplash.com/photo-1590792024908-f579e0e81c4e?w=800",
			Category:         "History & Culture",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-17:00, Fri until 20:30",
			Website:          strPtr("https://www.britishmuseum.org"),
			Phone:            strPtr("+44 20 7323 8299"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "Holborn", Line: strPtr("Central, Piccadilly"), Distance: "5 min walk"},
				{Type: "tube", Name: "Tottenham Court Road", Line: strPtr("Central, Northern"), Distance: "7 min walk"},
				{Type: "bus", Name: "Great Russell Street", Routes: []string{"1", "8", "19", "25", "38"}, Distance: "1 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "The Museum Tavern", Type: "Pub", Cuisine: strPtr("British"), Distance: "1 min walk", PriceRange: "££", Address: strPtr("49 Great Russell St")},
				{Name: "Cafe in the Great Court", Type: "Cafe", Cuisine: strPtr("International"), Distance: "Inside museum", PriceRange: "££", Address: strPtr("British Museum")},
				{Name: "Honey & Co", Type: "Restaurant", Cuisine: strPtr("Middle Eastern"), Distance: "5 min walk", PriceRange: "£££", Address: strPtr("25a Warren St")},
			},
			Featured: true,
			Rating:   4.8,
		},
		{
			ID:               "2",
			Name:             "Natural History Museum",
			Description:      "The Natural History Museum is home to life and earth science specimens comprising some 80 million items within five main collections. The museum is particularly famous for its dinosaur skeletons, including a Diplodocus cast named Dippy, and the dramatic blue whale skeleton in Hintze Hall. The stunning Romanesque architecture makes it one of London's most beautiful buildings.",
			ShortDescription: "Iconic museum featuring dinosaurs, wildlife, and natural wonders",
			Address:          "Cromwell Road, South Kensington, London SW7 5BD",
			Latitude:         51.4967,
			Longitude:        -0.1764,
			ImageURL:         "https://images.unsplash.com/photo-1574176104669-c3db2e09be50?w=800",
			Category:         "Science & Nature",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-17:50",
			Website:          strPtr("https://www.nhm.ac.uk"),
			Phone:            strPtr("+44 20 7942 5000"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "South Kensington", Line: strPtr("Circle, District, Piccadilly"), Distance: "5 min walk"},
				{Type: "bus", Name: "Cromwell Road", Routes: []string{"14", "49", "70", "74", "345", "414", "C1"}, Distance: "2 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "The Central Cafe", Type: "Cafe", Cuisine: strPtr("British"), Distance: "Inside museum", PriceRange: "££", Address: strPtr("Natural History Museum")},
				{Name: "Comptoir Libanais", Type: "Restaurant", Cuisine: strPtr("Lebanese"), Distance: "3 min walk", PriceRange: "££", Address: strPtr("1 Exhibition Rd")},
			},
			Featured: true,
			Rating:   4.7,
		},
		{
			ID:               "3",
			Name:             "Victoria and Albert Museum",
			Description:      "The V&A is the world's largest museum of applied and decorative arts and design, housing a permanent collection of over 2.3 million objects. The collection spans 5,000 years of art from ancient times to the present day, including ceramics, furniture, fashion, glass, jewelry, metalwork, photographs, sculpture, textiles, and paintings.",
			ShortDescription: "World's leading museum of art, design, and performance",
			Address:          "Cromwell Road, London SW7 2RL",
			Latitude:         51.4966,
			Longitude:        -0.1722,
			ImageURL:         "https://images.unsplash.com/photo-1567593810070-7a3d471af022?w=800",
			Category:         "Art & Design",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-17:45, Fri until 22:00",
			Website:          strPtr("https://www.vam.ac.uk"),
			Phone:            strPtr("+44 20 7942 2000"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "South Kensington", Line: strPtr("Circle, District, Piccadilly"), Distance: "5 min walk"},
				{Type: "bus", Name: "Cromwell Road", Routes: []string{"14", "49", "70", "74", "345", "414", "C1"}, Distance: "2 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "V&A Cafe", Type: "Cafe", Cuisine: strPtr("British"), Distance: "Inside museum", PriceRange: "££", Address: strPtr("V&A Museum")},
				{Name: "Daquise", Type: "Restaurant", Cuisine: strPtr("Polish"), Distance: "5 min walk", PriceRange: "££", Address: strPtr("20 Thurloe St")},
			},
			Featured: true,
			Rating:   4.7,
		},
		{
			ID:               "4",
			Name:             "Science Museum",
			Description:      "The Science Museum is a major museum showcasing the development of science and technology. With over 15,000 objects on display, including the first jet engine, Stephenson's Rocket, and the Apollo 10 command module, the museum brings science to life through interactive galleries and IMAX shows.",
			ShortDescription: "Interactive science and technology museum for all ages",
			Address:          "Exhibition Road, South Kensington, London SW7 2DD",
			Latitude:         51.4978,
			Longitude:        -0.1745,
			ImageURL:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800",
			Category:         "Science & Technology",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-18:00",
			Website:          strPtr("https://www.sciencemuseum.org.uk"),
			Phone:            strPtr("+44 20 7942 4000"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "South Kensington", Line: strPtr("Circle, District, Piccadilly"), Distance: "5 min walk"},
				{Type: "bus", Name: "Exhibition Road", Routes: []string{"14", "49", "70", "74", "345", "414", "C1"}, Distance: "3 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "Deep Blue Cafe", Type: "Cafe", Cuisine: strPtr("British"), Distance: "Inside museum", PriceRange: "££", Address: strPtr("Science Museum")},
				{Name: "Pizza Express", Type: "Restaurant", Cuisine: strPtr("Italian"), Distance: "5 min walk", PriceRange: "££", Address: strPtr("6 Old Brompton Rd")},
			},
			Featured: true,
			Rating:   4.6,
		},
		{
			ID:               "5",
			Name:             "Tate Modern",
			Description:      "Housed in the former Bankside Power Station, Tate Modern is one of the world's largest museums of modern and contemporary art. The collection includes works by Picasso, Dalí, Warhol, and many contemporary artists. The Turbine Hall hosts spectacular large-scale installations.",
			ShortDescription: "Britain's national gallery of international modern art",
			Address:          "Bankside, London SE1 9TG",
			Latitude:         51.5076,
			Longitude:        -0.0994,
			ImageURL:         "https://images.unsplash.com/photo-1544621028-b9a3fb9e3d5c?w=800",
			Category:         "Modern Art",
			FreeEntry:        true,
			OpeningHours:     "Sun-Thu 10:00-18:00, Fri-Sat until 22:00",
			Website:          strPtr("https://www.tate.org.uk/visit/tate-modern"),
			Phone:            strPtr("+44 20 7887 8888"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "Southwark", Line: strPtr("Jubilee"), Distance: "8 min walk"},
				{Type: "tube", Name: "Blackfriars", Line: strPtr("Circle, District"), Distance: "10 min walk"},
				{Type: "bus", Name: "Southwark Street", Routes: []string{"45", "63", "100", "381"}, Distance: "5 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "Tate Modern Restaurant", Type: "Restaurant", Cuisine: strPtr("British"), Distance: "Inside museum", PriceRange: "£££", Address: strPtr("Tate Modern, Level 6")},
				{Name: "The Anchor Bankside", Type: "Pub", Cuisine: strPtr("British"), Distance: "5 min walk", PriceRange: "££", Address: strPtr("34 Park St")},
			},
			Featured: true,
			Rating:   4.5,
		},
		{
			ID:               "6",
			Name:             "National Gallery",
			Description:      "The National Gallery houses one of the greatest collections of Western European paintings from the 13th to 19th centuries. Masterpieces include works by Leonardo da Vinci, Van Gogh, Monet, Rembrandt, and Turner. Located in the heart of Trafalgar Square, it's one of London's most visited attractions.",
			ShortDescription: "World-renowned collection of Western European paintings",
			Address:          "Trafalgar Square, London WC2N 5DN",
			Latitude:         51.5089,
			Longitude:        -0.1283,
			ImageURL:         "https://images.unsplash.com/photo-1594736797933-d0501ba2fe65?w=800",
			Category:         "Art",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-18:00, Fri until 21:00",
			Website:          strPtr("https://www.nationalgallery.org.uk"),
			Phone:            strPtr("+44 20 7747 2885"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "Charing Cross", Line: strPtr("Bakerloo, Northern"), Distance: "2 min walk"},
				{Type: "tube", Name: "Leicester Square", Line: strPtr("Northern, Piccadilly"), Distance: "5 min walk"},
				{Type: "bus", Name: "Trafalgar Square", Routes: []string{"3", "6", "9", "11", "13", "15", "23", "24", "87", "91"}, Distance: "1 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "National Dining Rooms", Type: "Restaurant", Cuisine: strPtr("British"), Distance: "Inside gallery", PriceRange: "£££", Address: strPtr("National Gallery")},
				{Name: "Cafe in the Crypt", Type: "Cafe", Cuisine: strPtr("British"), Distance: "3 min walk", PriceRange: "££", Address: strPtr("St Martin-in-the-Fields")},
			},
			Featured: true,
			Rating:   4.8,
		},
		{
			ID:               "7",
			Name:             "Tower of London",
			Description:      "A historic castle and World Heritage Site, the Tower of London has served as royal residence, prison, and fortress for over 900 years. Home to the Crown Jewels, the Yeoman Warders (Beefeaters), and the famous ravens. Explore the medieval palace, armour collection, and learn about the tower's dark history.",
			ShortDescription: "Historic royal palace with Crown Jewels and 900 years of history",
			Address:          "St Katharine's & Wapping, London EC3N 4AB",
			Latitude:         51.5081,
			Longitude:        -0.0759,
			ImageURL:         "https://images.unsplash.com/photo-1564666230378-0e60c4c81df8?w=800",
			Category:         "History & Heritage",
			FreeEntry:        false,
			OpeningHours:     "Tue-Sat 09:00-17:00, Sun-Mon 10:00-17:00",
			Website:          strPtr("https://www.hrp.org.uk/tower-of-london"),
			Phone:            strPtr("+44 20 3166 6000"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "Tower Hill", Line: strPtr("Circle, District"), Distance: "2 min walk"},
				{Type: "train", Name: "Fenchurch Street", Line: strPtr("National Rail"), Distance: "10 min walk"},
				{Type: "bus", Name: "Tower of London", Routes: []string{"15", "42", "78", "100", "RV1"}, Distance: "1 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "The New Armouries Cafe", Type: "Cafe", Cuisine: strPtr("British"), Distance: "Inside tower", PriceRange: "££", Address: strPtr("Tower of London")},
				{Name: "Dickens Inn", Type: "Pub", Cuisine: strPtr("British"), Distance: "7 min walk", PriceRange: "££", Address: strPtr("St Katharine Docks")},
			},
			Featured: false,
			Rating:   4.6,
		},
		{
			ID:               "8",
			Name:             "Imperial War Museum",
			Description:      "The Imperial War Museum explores the causes and consequences of modern conflict, from World War I to present day. The museum features a suspended Spitfire, V-2 rocket, and powerful Holocaust Exhibition. Interactive displays and personal stories bring history to life.",
			ShortDescription: "Powerful museum exploring conflict from WWI to today",
			Address:          "Lambeth Road, London SE1 6HZ",
			Latitude:         51.4958,
			Longitude:        -0.1086,
			ImageURL:         "https://images.unsplash.com/photo-1559135197-8a45ea74d367?w=800",
			Category:         "History & Military",
			FreeEntry:        true,
			OpeningHours:     "Daily 10:00-18:00",
			Website:          strPtr("https://www.iwm.org.uk/visits/iwm-london"),
			Phone:            strPtr("+44 20 7416 5000"),
			Transport: []domain.TransportLink{
				{Type: "tube", Name: "Lambeth North", Line: strPtr("Bakerloo"), Distance: "5 min walk"},
				{Type: "bus", Name: "Lambeth Road", Routes: []string{"12", "53", "148", "171", "344"}, Distance: "2 min walk"},
			},
			NearbyEateries: []domain.NearbyEatery{
				{Name: "IWM Cafe", Type: "Cafe", Cuisine: strPtr("British"), Distance: "Inside museum", PriceRange: "££", Address: strPtr("Imperial War Museum")},
				{Name: "Masters Super Fish", Type: "Restaurant", Cuisine: strPtr("Fish & Chips"), Distance: "8 min walk", PriceRange: "£", Address: strPtr("191 Waterloo Rd")},
			},
			Featured: false,
			Rating:   4.5,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
