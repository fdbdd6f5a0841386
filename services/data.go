package services

import "fmt"

// generateReviews fabricates a handful of plausible reviews for a
// catalog entry so detail views always have something to show.
func generateReviews(itemName, location string, count int) []Review {
	names := []string{
		"Ethan Hayes", "Chloe Sullivan", "Liam Garcia", "Sophia Nguyen",
		"Mason Rodriguez", "Ava Williams", "Noah Brown", "Isabella Jones",
	}
	sentiments := []string{
		fmt.Sprintf("Our experience with %s in %s was unforgettable. The service was top-notch!", itemName, location),
		fmt.Sprintf("I cannot recommend %s enough. A truly 5-star experience from start to finish.", itemName),
		fmt.Sprintf("Absolutely breathtaking. %s made our trip to %s truly special.", itemName, location),
		fmt.Sprintf("From the amenities to the staff, everything about %s was perfect.", itemName),
		fmt.Sprintf("A fantastic choice for anyone visiting %s. We will definitely be back!", location),
		"Smooth journey and excellent service. Highly recommended.",
		fmt.Sprintf("The best way to travel to %s. Comfortable and efficient.", location),
		"Wonderful! This exceeded all of our expectations.",
	}

	reviews := make([]Review, 0, count)
	for i := 0; i < count; i++ {
		reviews = append(reviews, Review{
			Name: names[i%len(names)],
			Date: fmt.Sprintf("2024-05-%d", 20-i),
			Text: sentiments[i%len(sentiments)],
		})
	}
	return reviews
}

var heroVideos = []string{
	"https://videos.pexels.com/video-files/3254008/3254008-hd_1920_1080_25fps.mp4",
	"https://videos.pexels.com/video-files/3015403/3015403-hd_1920_1080_25fps.mp4",
	"https://videos.pexels.com/video-files/2795733/2795733-hd_1920_1080_30fps.mp4",
	"https://videos.pexels.com/video-files/853874/853874-hd_1920_1080_25fps.mp4",
	"https://videos.pexels.com/video-files/4434250/4434250-hd_1920_1080_25fps.mp4",
}

func seedFlights() []Flight {
	return []Flight{
		{
			ItemCore: ItemCore{
				ID: "flight-1", Title: "Direct Flight to Tokyo", Location: "Johannesburg (JNB) -> Tokyo (HND)", PriceZAR: 15500,
				Images: []string{
					"https://images.unsplash.com/photo-1630936693910-62ad38163a99?auto=format&fit=crop&q=80&w=870",
					"https://plus.unsplash.com/premium_photo-1682092559719-b72195d1ef1a?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1662406009228-b270717e296f?auto=format&fit=crop&q=80&w=973",
				},
				Rating:  4.8,
				Reviews: generateReviews("Asiana Skies Flight", "Tokyo", 3),
				Description: Description{
					Short: "Experience unparalleled service on your way to Tokyo.",
					Long:  "Fly in comfort with our state-of-the-art fleet. Enjoy gourmet meals, a vast entertainment library, and the serene ambiance of our cabins as you journey to the heart of Japan.",
				},
			},
			Airline: "Asiana Skies", Duration: "17h 30m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-2", Title: "Cape Town to London", Location: "Cape Town (CPT) -> London (LHR)", PriceZAR: 12800,
				Images: []string{
					"https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1520986606214-8b456906c813?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1491156855053-9cdff72c7f85?auto=format&fit=crop&q=80&w=928",
				},
				Rating:  4.7,
				Reviews: generateReviews("Atlantic Wings Flight", "London", 3),
				Description: Description{
					Short: "Connect the Cape to the capital of the UK.",
					Long:  "Our direct flight offers a seamless travel experience. With spacious seating and attentive cabin crew, your holiday begins the moment you step on board.",
				},
			},
			Airline: "Atlantic Wings", Duration: "11h 45m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-3", Title: "New York Business Class", Location: "Johannesburg (JNB) -> New York (JFK)", PriceZAR: 45000,
				Images: []string{
					"https://images.unsplash.com/photo-1518391846015-55a9cc003b25?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1663649583976-d49abe758932?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1656195328871-d277f47e353b?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Liberty Air Business Class", "New York", 3),
				Description: Description{
					Short: "Arrive in the Big Apple rested and ready.",
					Long:  "Our business class suite features lie-flat beds, premium dining, and exclusive lounge access. Experience the pinnacle of transatlantic travel.",
				},
			},
			Airline: "Liberty Air", Duration: "15h 50m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-4", Title: "Fly to Romantic Paris", Location: "Cape Town (CPT) -> Paris (CDG)", PriceZAR: 13200,
				Images: []string{
					"https://images.unsplash.com/photo-1626985249964-4fa612df0274?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1499856871958-5b9627545d1a?auto=format&fit=crop&q=80&w=820",
					"https://images.unsplash.com/photo-1621853476878-b42ae4930faf?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.6,
				Reviews: generateReviews("Élan Air Flight", "Paris", 3),
				Description: Description{
					Short: "Your Parisian adventure starts here.",
					Long:  "Enjoy a touch of French elegance in the sky. We offer complimentary champagne and artisanal pastries to get you in the mood for Paris.",
				},
			},
			Airline: "Élan Air", Duration: "13h 20m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-5", Title: "Dubai Luxury A380", Location: "Johannesburg (JNB) -> Dubai (DXB)", PriceZAR: 9800,
				Images: []string{
					"https://images.unsplash.com/photo-1512453979798-5ea266f8880c?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1512632578888-169bbbc64f33?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1518684079-3c830dcef090?w=800&q=80",
				},
				Rating:  4.9,
				Reviews: generateReviews("Emirates A380 Flight", "Dubai", 3),
				Description: Description{
					Short: "Experience the iconic A380 to Dubai.",
					Long:  "Fly on the world's largest passenger aircraft. Enjoy spacious cabins, an award-winning entertainment system, and world-class service to the jewel of the UAE.",
				},
			},
			Airline: "Emirates", Duration: "8h 10m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-6", Title: "Adventure to Rio", Location: "Cape Town (CPT) -> Rio de Janeiro (GIG)", PriceZAR: 14500,
				Images: []string{
					"https://images.unsplash.com/photo-1483729558449-99ef09a8c325?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1542296332-935532a24f2b?auto=format&fit=crop&w=1740&q=80",
					"https://images.unsplash.com/photo-1483729558449-99ef09a8c325?auto=format&fit=crop&w=1740&q=80",
				},
				Rating:  4.5,
				Reviews: generateReviews("Samba Airways Flight", "Rio", 3),
				Description: Description{
					Short: "Cross the Atlantic to vibrant Brazil.",
					Long:  "Get ready for carnival vibes with our friendly cabin crew and Brazilian-inspired cuisine. Your adventure to Rio de Janeiro starts with us.",
				},
			},
			Airline: "Samba Airways", Duration: "10h 30m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-7", Title: "Sydney Direct", Location: "Johannesburg (JNB) -> Sydney (SYD)", PriceZAR: 18200,
				Images: []string{
					"https://images.unsplash.com/photo-1528072164453-f4e8ef0d475a?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1605685503584-77dc4af666de?auto=format&fit=crop&q=80&w=889",
					"https://images.unsplash.com/photo-1562791098-df1ae65dee79?auto=format&fit=crop&q=80&w=869",
				},
				Rating:  4.7,
				Reviews: generateReviews("Oceanic Air Flight", "Sydney", 3),
				Description: Description{
					Short: "Journey Down Under to the stunning city of Sydney.",
					Long:  "Cross the Indian Ocean in comfort. Our direct route to Sydney ensures you arrive refreshed and ready to explore the iconic harbour, beaches, and vibrant city life.",
				},
			},
			Airline: "Oceanic Air", Duration: "14h 5m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-8", Title: "Explore Bangkok", Location: "Cape Town (CPT) -> Bangkok (BKK)", PriceZAR: 11500,
				Images: []string{
					"https://images.unsplash.com/photo-1523731407965-2430cd12f5e4?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1705831117067-92f41547b148?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1692554673955-17689a918e45?auto=format&fit=crop&q=80&w=774",
				},
				Rating:  4.6,
				Reviews: generateReviews("Thai Orchid Flight", "Bangkok", 3),
				Description: Description{
					Short: "Discover the vibrant street life of Bangkok.",
					Long:  "Fly to the heart of Thailand and immerse yourself in a city of contrasts, from serene temples to bustling markets. Enjoy authentic Thai hospitality on board.",
				},
			},
			Airline: "Thai Orchid", Duration: "16h 20m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-9", Title: "Connect to Toronto", Location: "Johannesburg (JNB) -> Toronto (YYZ)", PriceZAR: 16800,
				Images: []string{
					"https://images.unsplash.com/photo-1507992781348-310259076fe0?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1628863353529-b942b78615b3?auto=format&fit=crop&w=1740&q=80",
					"https://images.unsplash.com/photo-1596492723901-f0952b66708a?auto=format&fit=crop&w=1858&q=80",
				},
				Rating:  4.5,
				Reviews: generateReviews("Maple Leaf Air", "Toronto", 3),
				Description: Description{
					Short: "Experience Canadian hospitality on your way to Toronto.",
					Long:  "Our flight to Toronto offers a comfortable and convenient connection to one of North America's most diverse cities. Enjoy the journey with our award-winning service.",
				},
			},
			Airline: "Maple Leaf Air", Duration: "18h 40m",
		},
		{
			ItemCore: ItemCore{
				ID: "flight-10", Title: "Ancient Rome Awaits", Location: "Cape Town (CPT) -> Rome (FCO)", PriceZAR: 12900,
				Images: []string{
					"https://images.unsplash.com/photo-1552832230-c0197dd311b5?auto=format&fit=crop&q=80&w=796",
					"https://images.unsplash.com/photo-1542820229-081e0c12af0b?auto=format&fit=crop&q=80&w=873",
					"https://images.unsplash.com/photo-1533104816931-20fa69146254?auto=format&fit=crop&w=1740&q=80",
				},
				Rating:  4.8,
				Reviews: generateReviews("Vita Airlines", "Rome", 3),
				Description: Description{
					Short: "Fly to the Eternal City and explore its history.",
					Long:  "Journey to Rome, a city filled with ancient wonders, incredible art, and delicious food. Our flight provides a comfortable start to your Italian escapade.",
				},
			},
			Airline: "Vita Airlines", Duration: "13h 50m",
		},
	}
}

func seedHotels() []Hotel {
	return []Hotel{
		{
			ItemCore: ItemCore{
				ID: "hotel-1", Title: "The Silo Hotel", Location: "Cape Town, South Africa", PriceZAR: 12500,
				Images: []string{
					"https://images.unsplash.com/photo-1543775224-483704519120?auto=format&fit=crop&q=80&w=793",
					"https://images.unsplash.com/photo-1621293954908-907159247fc8?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1664917555352-f3f66e57ccc2?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("The Silo Hotel", "Cape Town", 3),
				Description: Description{
					Short: "Luxury art hotel with panoramic city views.",
					Long:  "Housed in a historic grain silo, this hotel is a masterpiece of design. Enjoy rooftop infinity pool views of Table Mountain and the V&A Waterfront.",
				},
			},
			Amenities: []string{"Rooftop Pool", "Art Gallery", "Spa", "Fine Dining"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-2", Title: "Park Hyatt Tokyo", Location: "Tokyo, Japan", PriceZAR: 9800,
				Images: []string{
					"https://plus.unsplash.com/premium_photo-1661963123153-5471a95b7042?auto=format&fit=crop&q=80&w=774",
					"https://images.unsplash.com/photo-1664227430717-9a62112984cf?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1554345102-c6a6033944eb?auto=format&fit=crop&q=80&w=907",
				},
				Rating:  4.8,
				Reviews: generateReviews("Park Hyatt Tokyo", "Tokyo", 3),
				Description: Description{
					Short: "Iconic hotel with stunning Shinjuku skyline views.",
					Long:  "Famous from \"Lost in Translation,\" this hotel offers sophisticated elegance, a sky-high pool, and the legendary New York Bar with live jazz.",
				},
			},
			Amenities: []string{"Sky Pool", "Jazz Bar", "Spa", "Michelin Star Restaurant"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-3", Title: "Le Bristol Paris", Location: "Paris, France", PriceZAR: 18000,
				Images: []string{
					"https://images.unsplash.com/photo-1746031589603-bfad70611ef6?auto=format&fit=crop&q=80&w=772",
					"https://images.unsplash.com/photo-1626868449668-fb47a048d9cb?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1723641349153-1e81030ab2b2?auto=format&fit=crop&q=80&w=919",
				},
				Rating:  5.0,
				Reviews: generateReviews("Le Bristol Paris", "Paris", 3),
				Description: Description{
					Short: "An icon of Parisian elegance and art de vivre.",
					Long:  "Located on the prestigious rue du Faubourg Saint-Honoré, Le Bristol offers a rooftop pool with Eiffel Tower views and a three-Michelin-star restaurant.",
				},
			},
			Amenities: []string{"Rooftop Pool", "3-Michelin Star Restaurant", "Courtyard Garden", "Spa"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-4", Title: "Four Seasons Serengeti", Location: "Serengeti, Tanzania", PriceZAR: 22000,
				Images: []string{
					"https://images.unsplash.com/photo-1661000902726-ebda7e06a23a?auto=format&fit=crop&q=80&w=1031",
					"https://images.unsplash.com/photo-1661000821259-93e0184acb5f?auto=format&fit=crop&q=80&w=1631",
					"https://images.unsplash.com/photo-1731329569575-b89066a46f30?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Four Seasons Serengeti", "Tanzania", 3),
				Description: Description{
					Short: "Luxury safari lodge with an animal-viewing infinity pool.",
					Long:  "Deep within Africa's finest safari destination, watch elephants gather at the watering hole from your private balcony or the stunning infinity pool.",
				},
			},
			Amenities: []string{"Infinity Pool", "Game Drives", "Spa", "Discovery Centre"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-5", Title: "COMO Uma Ubud", Location: "Bali, Indonesia", PriceZAR: 6500,
				Images: []string{
					"https://images.unsplash.com/photo-1728048756938-de1ccee0ab15?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1540541338287-41700207dee6?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1611892440504-42a792e24d32?auto=format&fit=crop&q=80&w=1470",
				},
				Rating:  4.7,
				Reviews: generateReviews("COMO Uma Ubud", "Bali", 3),
				Description: Description{
					Short: "A tranquil retreat in the heart of Bali's cultural hub.",
					Long:  "Overlooking the Tjampuhan Valley, this resort offers sun-drenched rooms, open-air yoga pavilions, and guided treks through the lush rice paddies.",
				},
			},
			Amenities: []string{"Yoga Pavilion", "Spa", "Pool", "Guided Hikes"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-6", Title: "The Gritti Palace", Location: "Venice, Italy", PriceZAR: 19500,
				Images: []string{
					"https://images.unsplash.com/photo-1751311756783-373789362265?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1594335954551-14ed4382eb1e?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1509647924673-bbb53e22eeb8?auto=format&fit=crop&q=80&w=866",
				},
				Rating:  4.9,
				Reviews: generateReviews("The Gritti Palace", "Venice", 3),
				Description: Description{
					Short: "A historic hotel on Venice's Grand Canal.",
					Long:  "Experience Venetian heritage in a former noble residence. The Gritti Palace offers opulent rooms, an exceptional cooking school, and Riva yacht experiences.",
				},
			},
			Amenities: []string{"Grand Canal Terrace", "Cooking School", "Riva Yacht", "Spa"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-7", Title: "Burj Al Arab Jumeirah", Location: "Dubai, UAE", PriceZAR: 35000,
				Images: []string{
					"https://images.unsplash.com/photo-1554289087-51d078c78d8a?auto=format&fit=crop&q=80&w=870",
					"https://plus.unsplash.com/premium_photo-1663061414669-bb34bcd3ff2f?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1728016280936-8e8c2ef3da4e?auto=format&fit=crop&q=80&w=812",
				},
				Rating:  5.0,
				Reviews: generateReviews("Burj Al Arab", "Dubai", 3),
				Description: Description{
					Short: "The world-famous icon of Arabian luxury.",
					Long:  "Experience the pinnacle of luxury with a private butler, a fleet of Rolls-Royce cars, and breathtaking views of the Arabian Gulf from your duplex suite.",
				},
			},
			Amenities: []string{"Private Butler", "Rooftop Helipad", "Underwater Restaurant", "Spa"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-8", Title: "1 Hotel Brooklyn Bridge", Location: "New York, USA", PriceZAR: 11000,
				Images: []string{
					"https://images.unsplash.com/photo-1677129667171-92abd8740fa3?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1740324351912-b9189685ab1a?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1550459773-a3a85200f67c?auto=format&fit=crop&q=80&w=1134",
				},
				Rating:  4.8,
				Reviews: generateReviews("1 Hotel Brooklyn Bridge", "New York", 3),
				Description: Description{
					Short: "Sustainable luxury with unmatched skyline views.",
					Long:  "Located on the Brooklyn waterfront, this hotel offers stunning panoramic views of the Manhattan skyline and the Brooklyn Bridge from its rooftop pool and bar.",
				},
			},
			Amenities: []string{"Rooftop Pool & Bar", "Sustainable Design", "Spa", "Cinema"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-9", Title: "explora Patagonia", Location: "Torres del Paine, Chile", PriceZAR: 25000,
				Images: []string{
					"https://images.unsplash.com/photo-1743510935745-b0cd869db5e8?auto=format&fit=crop&q=80&w=943",
					"https://images.unsplash.com/photo-1611892440504-42a792e24d32?auto=format&fit=crop&w=1740&q=80",
					"https://images.unsplash.com/photo-1518557984634-82639d127346?auto=format&fit=crop&w=1740&q=80",
				},
				Rating:  4.9,
				Reviews: generateReviews("explora Patagonia", "Chile", 3),
				Description: Description{
					Short: "An all-inclusive lodge in the heart of Patagonia.",
					Long:  "This luxury lodge is the perfect base for exploring the breathtaking landscapes of Torres del Paine National Park, with over 40 guided hikes and horseback rides.",
				},
			},
			Amenities: []string{"All-Inclusive", "Guided Excursions", "Indoor Pool", "Spa"},
		},
		{
			ItemCore: ItemCore{
				ID: "hotel-10", Title: "The Fullerton Bay Hotel", Location: "Singapore", PriceZAR: 8500,
				Images: []string{
					"https://plus.unsplash.com/premium_photo-1697729419943-30521d527501?auto=format&fit=crop&q=80&w=869",
					"https://images.unsplash.com/photo-1662385930165-49ebaa03b152?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1565880429858-ed7cb461f1b0?auto=format&fit=crop&q=80&w=872",
				},
				Rating:  4.9,
				Reviews: generateReviews("The Fullerton Bay Hotel", "Singapore", 3),
				Description: Description{
					Short: "Waterfront luxury with stunning Marina Bay views.",
					Long:  "Enjoy sophisticated, modern luxury right on the water. The hotel features a rooftop infinity pool, chic bars, and panoramic views of the iconic Singapore skyline.",
				},
			},
			Amenities: []string{"Rooftop Pool", "Jacuzzi", "Fitness Center", "Fine Dining"},
		},
	}
}

func seedCars() []Car {
	return []Car{
		{
			ItemCore: ItemCore{
				ID: "car-1", Title: "BMW X5", Location: "Johannesburg, South Africa", PriceZAR: 2200,
				Images: []string{
					"https://images.unsplash.com/photo-1609184166822-bd1f1b991a06?auto=format&fit=crop&q=80&w=899",
					"https://images.unsplash.com/photo-1645593624916-4e4a83cd4a93?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1640018243934-32df7cdfe339?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.8,
				Reviews: generateReviews("BMW X5 Rental", "Johannesburg", 3),
				Description: Description{
					Short: "Premium SUV for city and safari adventures.",
					Long:  "The BMW X5 offers comfort, style, and performance. Perfect for navigating Johannesburg or taking a trip to the nearby game reserves.",
				},
			},
			Type: "SUV", Seats: 5, Features: []string{"Automatic", "GPS", "Leather Seats", "Sunroof"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-2", Title: "Fiat 500 Convertible", Location: "Rome, Italy", PriceZAR: 1300,
				Images: []string{
					"https://images.unsplash.com/photo-1655925114275-27ee1a375713?auto=format&fit=crop&q=80&w=879",
					"https://images.unsplash.com/photo-1559141433-0784f60e7e3d?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1754782381967-95e9b15ced54?auto=format&fit=crop&q=80&w=871",
				},
				Rating:  4.7,
				Reviews: generateReviews("Fiat 500 Rental", "Rome", 3),
				Description: Description{
					Short: "The perfect car for navigating historic Rome.",
					Long:  "Embrace the Italian lifestyle. This chic convertible is ideal for zipping through narrow streets and finding hidden gems in the Eternal City.",
				},
			},
			Type: "Convertible", Seats: 4, Features: []string{"Automatic", "Compact", "Bluetooth"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-3", Title: "Land Rover Defender", Location: "Reykjavik, Iceland", PriceZAR: 3500,
				Images: []string{
					"https://images.unsplash.com/photo-1730830812273-12c0a8a98092?auto=format&fit=crop&q=80&w=929",
					"https://images.unsplash.com/photo-1716093916467-d0b99b921a64?auto=format&fit=crop&q=80&w=874",
					"https://images.unsplash.com/photo-1578564810934-c131250d3792?auto=format&fit=crop&q=80&w=871",
				},
				Rating:  4.9,
				Reviews: generateReviews("Land Rover Defender Rental", "Iceland", 3),
				Description: Description{
					Short: "Rugged 4x4 for Iceland's epic Ring Road.",
					Long:  "Built for adventure, the Defender can handle Iceland's dramatic landscapes, from river crossings to gravel roads, ensuring your safety and comfort.",
				},
			},
			Type: "4x4", Seats: 5, Features: []string{"4-Wheel Drive", "Heated Seats", "GPS", "All-Terrain Tires"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-4", Title: "Tesla Model 3", Location: "Los Angeles, USA", PriceZAR: 1900,
				Images: []string{
					"https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1700411882056-e2bd2e61af12?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1701311521752-9f85d68d55ed?auto=format&fit=crop&q=80&w=1032",
				},
				Rating:  4.8,
				Reviews: generateReviews("Tesla Model 3 Rental", "Los Angeles", 3),
				Description: Description{
					Short: "Explore LA in silent, eco-friendly style.",
					Long:  "Cruise down the Pacific Coast Highway in this sleek electric vehicle. Enjoy cutting-edge technology and zero emissions on your California road trip.",
				},
			},
			Type: "Electric Sedan", Seats: 5, Features: []string{"Autopilot", "Glass Roof", "Premium Sound"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-5", Title: "Mercedes-Benz G-Class", Location: "Dubai, UAE", PriceZAR: 4800,
				Images: []string{
					"https://images.unsplash.com/photo-1677137853766-7a7d0865b710?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1677137855528-81d64da55fe1?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1700329694402-baa26366b29e?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("G-Class Rental", "Dubai", 3),
				Description: Description{
					Short: "The ultimate luxury SUV for exploring Dubai in style.",
					Long:  "Make a statement wherever you go. The G-Class combines iconic design with formidable off-road capability and opulent comfort.",
				},
			},
			Type: "Luxury 4x4", Seats: 5, Features: []string{"4-Wheel Drive", "Leather Seats", "Premium Sound", "Sunroof"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-6", Title: "Porsche 911 Carrera", Location: "Munich, Germany", PriceZAR: 6500,
				Images: []string{
					"https://images.unsplash.com/photo-1680530943583-9b0db80fac69?auto=format&fit=crop&q=80&w=1032",
					"https://images.unsplash.com/photo-1604285815152-b992500382a8?auto=format&fit=crop&q=80&w=1032",
					"https://images.unsplash.com/photo-1680530943399-5939f747d5e0?auto=format&fit=crop&q=80&w=1032",
				},
				Rating:  5.0,
				Reviews: generateReviews("Porsche 911 Rental", "Munich", 3),
				Description: Description{
					Short: "Experience the thrill of the German Autobahn.",
					Long:  "Unleash the power of a legendary sports car. The Porsche 911 is the perfect vehicle for scenic drives through the Bavarian Alps and high-speed runs on the Autobahn.",
				},
			},
			Type: "Sports Car", Seats: 4, Features: []string{"PDK Automatic", "Sport Chrono Package", "Convertible"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-7", Title: "Toyota Hilux 4x4", Location: "Maun, Botswana", PriceZAR: 1800,
				Images: []string{
					"https://images.unsplash.com/photo-1629807390858-2d19718c41d3?auto=format&fit=crop&q=80&w=1470",
					"https://images.unsplash.com/photo-1621979534678-52a815509a87?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1648197323414-4255ea82d86b?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.7,
				Reviews: generateReviews("Toyota Hilux Rental", "Botswana", 3),
				Description: Description{
					Short: "A fully-equipped 4x4 for a self-drive safari.",
					Long:  "Explore the wilds of the Okavango Delta. This reliable and rugged Hilux comes equipped with a rooftop tent and camping gear for the ultimate African adventure.",
				},
			},
			Type: "4x4 Truck", Seats: 5, Features: []string{"Rooftop Tent", "Camping Gear", "Long Range Fuel Tank"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-8", Title: "VW Polo", Location: "Cape Town, South Africa", PriceZAR: 750,
				Images: []string{
					"https://images.unsplash.com/photo-1587142151322-54f87d1b7c12?auto=format&fit=crop&q=80&w=1032",
					"https://images.unsplash.com/photo-1666277337903-49cedba7c990?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1762028160585-a25cdf8db066?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.6,
				Reviews: generateReviews("VW Polo Rental", "Cape Town", 3),
				Description: Description{
					Short: "The ideal compact car for city and coastal drives.",
					Long:  "Economical and easy to drive, the VW Polo is perfect for exploring Cape Town, from the city bowl to the scenic Chapman's Peak Drive and the Winelands.",
				},
			},
			Type: "Compact", Seats: 5, Features: []string{"Manual", "Air Conditioning", "Bluetooth"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-9", Title: "Jeep Wrangler", Location: "Moab, Utah, USA", PriceZAR: 2800,
				Images: []string{
					"https://images.unsplash.com/photo-1506015391300-4802dc74de2e?auto=format&fit=crop&q=80&w=959",
					"https://images.unsplash.com/photo-1636880827805-adbc35b7c69d?auto=format&fit=crop&q=80&w=872",
					"https://images.unsplash.com/photo-1636880777476-b41a41ca590d?auto=format&fit=crop&q=80&w=1472",
				},
				Rating:  4.9,
				Reviews: generateReviews("Jeep Wrangler Rental", "Moab", 3),
				Description: Description{
					Short: "The ultimate off-road vehicle for Utah's national parks.",
					Long:  "Tackle the famous red-rock trails of Moab. The Jeep Wrangler is built for adventure, allowing you to explore areas other vehicles can't reach.",
				},
			},
			Type: "Off-Road 4x4", Seats: 4, Features: []string{"4-Wheel Drive", "Removable Top", "All-Terrain Tires"},
		},
		{
			ItemCore: ItemCore{
				ID: "car-10", Title: "Renault Clio", Location: "Paris, France", PriceZAR: 950,
				Images: []string{
					"https://images.unsplash.com/photo-1666335009164-2597314da8e7?auto=format&fit=crop&q=80&w=1470",
					"https://images.unsplash.com/photo-1603116962580-c52ff4a2cf5a?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1679398175192-92238aac595b?auto=format&fit=crop&q=80&w=886",
				},
				Rating:  4.5,
				Reviews: generateReviews("Renault Clio Rental", "Paris", 3),
				Description: Description{
					Short: "A stylish and compact car for navigating Paris.",
					Long:  "Effortlessly navigate the charming and busy streets of Paris in this compact and fuel-efficient car. Perfect for city exploration and day trips.",
				},
			},
			Type: "Compact", Seats: 5, Features: []string{"Manual", "GPS", "Air Conditioning"},
		},
	}
}

func seedExploreItems() []ExploreItem {
	return []ExploreItem{
		{
			ItemCore: ItemCore{
				ID: "explore-1", Title: "Private Kruger Park Safari", Location: "Kruger National Park, South Africa", PriceZAR: 8500,
				Images: []string{
					"https://images.unsplash.com/photo-1612703252506-e2f1f674752d?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1586943353950-95bdbe3207a1?auto=format&fit=crop&q=80&w=1018",
					"https://images.unsplash.com/photo-1594916105020-b28f829993b7?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Kruger Safari", "South Africa", 3),
				Description: Description{
					Short: "Track the \"Big Five\" with an expert guide.",
					Long:  "Embark on a full-day private game drive in one of Africa's most iconic reserves. Your expert guide will help you find leopards, lions, rhinos, elephants, and buffalos.",
				},
			},
			Tags: []string{"safari", "nature", "adventure"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-2", Title: "Kyoto Temples & Geishas", Location: "Kyoto, Japan", PriceZAR: 4200,
				Images: []string{
					"https://images.unsplash.com/photo-1623392562431-5f0071069fa3?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1593405844957-3854dae97a19?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1565178117145-41db4d572950?auto=format&fit=crop&q=80&w=857",
				},
				Rating:  4.8,
				Reviews: generateReviews("Kyoto Tour", "Japan", 3),
				Description: Description{
					Short: "Discover the ancient heart of Japan.",
					Long:  "Wander through the serene Arashiyama Bamboo Grove, visit the Golden Pavilion (Kinkaku-ji), and explore the Gion district, the traditional home of geishas.",
				},
			},
			Tags: []string{"culture", "historic", "asia"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-3", Title: "Machu Picchu Sunrise Hike", Location: "Cusco, Peru", PriceZAR: 6700,
				Images: []string{
					"https://images.unsplash.com/photo-1587595431973-160d0d94add1?auto=format&fit=crop&q=80&w=876",
					"https://images.unsplash.com/photo-1609973010723-fc9c81a06fa9?auto=format&fit=crop&q=80&w=1032",
					"https://images.unsplash.com/photo-1759358257675-33bfe6be7d18?auto=format&fit=crop&q=80&w=774",
				},
				Rating:  5.0,
				Reviews: generateReviews("Machu Picchu Hike", "Peru", 3),
				Description: Description{
					Short: "Witness a breathtaking sunrise over the lost city.",
					Long:  "Take an early morning journey to the legendary Inca citadel. Watch as the sun rises over the Andes, casting a golden glow on the ancient stones. A truly spiritual experience.",
				},
			},
			Tags: []string{"hike", "wonder", "historic"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-4", Title: "Santorini Caldera Catamaran Cruise", Location: "Santorini, Greece", PriceZAR: 3800,
				Images: []string{
					"https://images.unsplash.com/photo-1565741478311-b3e79a17bfe3?auto=format&fit=crop&q=80&w=774",
					"https://images.unsplash.com/photo-1703894173711-f3ef68c3a03d?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1544327404-f6aed3d39dbf?auto=format&fit=crop&q=80&w=774",
				},
				Rating:  4.9,
				Reviews: generateReviews("Santorini Cruise", "Greece", 3),
				Description: Description{
					Short: "Sail the Aegean and watch an iconic sunset.",
					Long:  "Cruise around the stunning volcanic caldera, swim in hot springs, and snorkel in crystal-clear waters. The day culminates with a delicious Greek BBQ on board as you watch the world-famous Oia sunset.",
				},
			},
			Tags: []string{"romance", "scenic", "europe"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-5", Title: "Hot Air Balloon Over Cappadocia", Location: "Cappadocia, Turkey", PriceZAR: 5100,
				Images: []string{
					"https://images.unsplash.com/photo-1674941237715-6f4f9a58636a?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1695708179175-e688d112d0a4?auto=format&fit=crop&q=80&w=869",
					"https://images.unsplash.com/photo-1666817197657-d5e415938e83?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Cappadocia Balloon Ride", "Turkey", 3),
				Description: Description{
					Short: "Float above a fairytale landscape of \"fairy chimneys\".",
					Long:  "Experience the magic of Cappadocia from above. At sunrise, hundreds of balloons fill the sky, creating a surreal and unforgettable panorama of the unique rock formations below.",
				},
			},
			Tags: []string{"adventure", "scenic", "unique"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-6", Title: "Dubai Desert Safari & Dune Bashing", Location: "Dubai, UAE", PriceZAR: 2800,
				Images: []string{
					"https://images.unsplash.com/photo-1507669653186-6d573feb190c?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1746569867775-c994d833b6aa?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1725909632786-c25c9b2b5a16?auto=format&fit=crop&q=80&w=1032",
				},
				Rating:  4.7,
				Reviews: generateReviews("Dubai Desert Safari", "UAE", 3),
				Description: Description{
					Short: "An exhilarating adventure in the Arabian desert.",
					Long:  "Experience the thrill of dune bashing in a 4x4 vehicle, followed by a traditional Bedouin camp experience with camel riding, henna painting, and a BBQ dinner under the stars.",
				},
			},
			Tags: []string{"adventure", "culture", "desert"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-7", Title: "Venetian Gondola Ride & Serenade", Location: "Venice, Italy", PriceZAR: 2500,
				Images: []string{
					"https://images.unsplash.com/photo-1720247522780-db8ba86cbfef?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1512301391659-28e9d110dd04?auto=format&fit=crop&q=80&w=873",
					"https://images.unsplash.com/photo-1689537047126-31cb0d075b4d?auto=format&fit=crop&q=80&w=1031",
				},
				Rating:  4.8,
				Reviews: generateReviews("Venice Gondola Ride", "Italy", 3),
				Description: Description{
					Short: "A classic romantic experience in the floating city.",
					Long:  "Glide through the historic canals of Venice in a traditional gondola. Enjoy a private serenade as you pass under charming bridges and alongside magnificent palaces.",
				},
			},
			Tags: []string{"romance", "historic", "europe"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-8", Title: "Northern Lights Chase", Location: "Tromsø, Norway", PriceZAR: 4500,
				Images: []string{
					"https://images.unsplash.com/photo-1531366936337-7c912a4589a7?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1709141242276-51bd5eb3ee5d?auto=format&fit=crop&q=80&w=870",
					"https://images.unsplash.com/photo-1681295180234-f6776738c218?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Northern Lights Chase", "Norway", 3),
				Description: Description{
					Short: "Hunt for the spectacular Aurora Borealis.",
					Long:  "Join a small group tour led by expert guides who will take you to the best spots to witness the magical dance of the Northern Lights in the Arctic sky.",
				},
			},
			Tags: []string{"nature", "adventure", "scenic"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-9", Title: "Thai Cooking Class in Chiang Mai", Location: "Chiang Mai, Thailand", PriceZAR: 1200,
				Images: []string{
					"https://images.unsplash.com/photo-1700402871735-8a67fa40d4ed?auto=format&fit=crop&q=80&w=774",
					"https://images.unsplash.com/photo-1656570789237-a4e78c726f61?auto=format&fit=crop&q=80&w=870",
					"https://plus.unsplash.com/premium_photo-1747816992869-6f0d8c0660cb?auto=format&fit=crop&q=80&w=870",
				},
				Rating:  4.9,
				Reviews: generateReviews("Thai Cooking Class", "Thailand", 3),
				Description: Description{
					Short: "Learn the secrets of authentic Thai cuisine.",
					Long:  "Visit a local market to select fresh ingredients, then learn to cook classic Thai dishes like Pad Thai, Green Curry, and Mango Sticky Rice in a traditional open-air kitchen.",
				},
			},
			Tags: []string{"food", "culture", "asia"},
		},
		{
			ItemCore: ItemCore{
				ID: "explore-10", Title: "Great Barrier Reef Snorkel Tour", Location: "Cairns, Australia", PriceZAR: 3200,
				Images: []string{
					"https://images.unsplash.com/photo-1682687981907-170c006e3744?auto=format&fit=crop&q=80&w=871",
					"https://images.unsplash.com/photo-1586508577428-120d6b072945?auto=format&fit=crop&q=80&w=928",
					"https://images.unsplash.com/photo-1550016628-71132bfb9c90?auto=format&fit=crop&q=80&w=881",
				},
				Rating:  4.8,
				Reviews: generateReviews("Great Barrier Reef Tour", "Australia", 3),
				Description: Description{
					Short: "Explore the vibrant underwater world of the world's largest coral reef.",
					Long:  "Sail to the outer reef on a modern catamaran and spend the day snorkeling or diving amongst colourful coral gardens and diverse marine life, including turtles and giant clams.",
				},
			},
			Tags: []string{"nature", "ocean", "adventure"},
		},
	}
}

var seedTestimonials = []Testimonial{
	{
		Name:     "Aisha Khan",
		Location: "Dubai, UAE",
		Quote:    "Booking our desert safari was so intuitive. The animations and dark mode on this site are absolutely stunning. Felt like a luxury experience from the start.",
		Image:    "https://images.unsplash.com/photo-1445053023192-8d45cb66099d?auto=format&fit=crop&q=80&w=870",
	},
	{
		Name:     "Kenji Tanaka",
		Location: "Kyoto, Japan",
		Quote:    "The level of detail is incredible. Finding our cultural tour in Kyoto was easy, and the entire website feels polished and modern. A joy to use!",
		Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&q=80",
	},
	{
		Name:     "Fatima Al Fassi",
		Location: "Marrakesh, Morocco",
		Quote:    "I found the perfect Riad for my trip. The photos are beautiful and the descriptions are so accurate. This site is my new go-to for travel planning.",
		Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&q=80",
	},
}

var seedTravelTips = []TravelTip{
	{Title: "Pro Tip: Packing", Tip: "Roll your clothes instead of folding them to save space and prevent wrinkles in your suitcase."},
	{Title: "Fun Fact: France", Tip: "France is the most visited country in the world, attracting over 89 million tourists annually."},
	{Title: "Pro Tip: Jet Lag", Tip: "Adjust your watch to your destination's time zone as soon as you board the plane to mentally prepare for the new time."},
	{Title: "Fun Fact: Japan", Tip: "Japan has over 5.5 million vending machines, offering everything from hot noodles to fresh eggs."},
	{Title: "Pro Tip: Local Etiquette", Tip: "Learn a few basic phrases in the local language, like \"hello,\" \"thank you,\" and \"goodbye.\" It shows respect and can go a long way!"},
	{Title: "Fun Fact: The Vatican", Tip: "Vatican City is the smallest country in the world, covering just 0.44 square kilometers."},
	{Title: "Pro Tip: Hydration", Tip: "Bring a reusable water bottle to stay hydrated and reduce plastic waste. Many airports have water filling stations."},
}
