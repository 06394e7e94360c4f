package content

// GROQ projections served by the CMS query API. Parameters are bound as $name.
const (
	productsQuery = `*[_type == "product"] | order(_createdAt desc) {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "images": images[].asset->url,
  "category": category->name,
  "categorySlug": category->slug.current,
  material, sizes, colors, stock,
  isFeatured, isNewArrival, isBestseller,
  rating, reviewCount, tags
}`

	productBySlugQuery = `*[_type == "product" && slug.current == $slug][0] {
  _id, name, "slug": slug.current, description, body,
  price, compareAtPrice,
  "images": images[].asset->url,
  "category": category->{ _id, name, "slug": slug.current },
  "subcategory": subcategory->{ name, "slug": slug.current },
  material, sizes, colors, stock, sku,
  isFeatured, isNewArrival, isBestseller,
  rating, reviewCount, tags, occasion
}`

	featuredQuery = `*[_type == "product" && isFeatured == true][0..7] | order(_createdAt desc) {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "category": category->name,
  rating, reviewCount, isBestseller, isNewArrival
}`

	bestsellersQuery = `*[_type == "product" && isBestseller == true][0..7] | order(rating desc) {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "images": images[0..1][].asset->url,
  "category": category->name,
  rating, reviewCount
}`

	newArrivalsQuery = `*[_type == "product" && isNewArrival == true][0..7] | order(_createdAt desc) {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "images": images[0..1][].asset->url,
  "category": category->name,
  rating, reviewCount
}`

	productsByCategoryQuery = `*[_type == "product" && category->slug.current == $categorySlug] | order(_createdAt desc) {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "images": images[0..1][].asset->url,
  "category": category->name,
  material, sizes, colors, stock,
  rating, reviewCount, tags, occasion
}`

	relatedProductsQuery = `*[_type == "product" && category._ref == $categoryId && _id != $productId][0..3] {
  _id, name, "slug": slug.current, price, compareAtPrice,
  "image": images[0].asset->url,
  "category": category->name,
  rating, reviewCount
}`

	categoriesQuery = `*[_type == "category" && !defined(parent)] | order(order asc) {
  _id, name, "slug": slug.current, description,
  "image": image.asset->url,
  "subcategories": *[_type == "category" && parent._ref == ^._id] | order(order asc) {
    _id, name, "slug": slug.current
  }
}`

	heroBannersQuery = `*[_type == "banner" && isActive == true && placement == "hero"] | order(order asc) {
  _id, title, subtitle, "image": image.asset->url,
  link, buttonText
}`

	productReviewsQuery = `*[_type == "review" && product._ref == $productId && isApproved == true] | order(_createdAt desc) {
  _id, author, rating, comment, _createdAt
}`

	siteSettingsQuery = `*[_type == "siteSettings"][0] {
  siteName, tagline, freeShippingThreshold,
  announcement, socialLinks
}`

	adminProductsQuery = `*[_type == "product"] | order(_createdAt desc) {
  _id, name, "slug": slug.current, price, stock,
  "image": images[0].asset->url,
  "category": category->name,
  isFeatured, isBestseller, isNewArrival
}`

	adminLowStockQuery = `*[_type == "product" && stock < 10] | order(stock asc) {
  _id, name, stock, "image": images[0].asset->url
}`

	adminStatsQuery = `{
  "totalProducts": count(*[_type == "product"]),
  "totalCategories": count(*[_type == "category"]),
  "lowStockCount": count(*[_type == "product" && stock < 10]),
  "featuredCount": count(*[_type == "product" && isFeatured == true])
}`
)
