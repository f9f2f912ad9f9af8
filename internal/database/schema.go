package database

// SetupSchema creates the storefront tables.
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
		    id CHAR(36) PRIMARY KEY,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    name VARCHAR(255) NOT NULL,
		    description TEXT,
		    price DECIMAL(10,2) NOT NULL,
		    category VARCHAR(100) NOT NULL,
		    slug VARCHAR(255) NOT NULL,
		    stock INT NOT NULL DEFAULT 0,
		    brand VARCHAR(100),
		    sensation VARCHAR(100),
		    size_ml VARCHAR(20),
		    size_floz VARCHAR(20),
		    format VARCHAR(100),
		    image VARCHAR(512),
		    secondary_images JSON,
		    product_filter VARCHAR(100),
		    usage_area VARCHAR(100),
		    target_audience VARCHAR(100),
		    active BOOLEAN DEFAULT TRUE,
		    UNIQUE KEY uk_slug (slug),
		    INDEX idx_category (category),
		    INDEX idx_price (price),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS coupons (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    code VARCHAR(50) NOT NULL,
		    discount_type ENUM('percentage', 'fixed') NOT NULL,
		    value DECIMAL(10,2) NOT NULL,
		    active BOOLEAN DEFAULT TRUE,
		    expires_at TIMESTAMP NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_code (code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    number VARCHAR(20) NOT NULL,
		    customer_name VARCHAR(200) NOT NULL,
		    customer_phone VARCHAR(50) NOT NULL,
		    delivery_method VARCHAR(50) NOT NULL,
		    coupon_code VARCHAR(50),
		    subtotal DECIMAL(10,2) NOT NULL,
		    total DECIMAL(10,2) NOT NULL,
		    status ENUM('pending', 'confirmed', 'cancelled') DEFAULT 'pending',
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_number (number),
		    INDEX idx_status (status),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id BIGINT NOT NULL,
		    product_id CHAR(36) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    quantity INT NOT NULL,
		    price DECIMAL(10,2) NOT NULL,
		    FOREIGN KEY (order_id) REFERENCES orders(id),
		    INDEX idx_order_id (order_id),
		    INDEX idx_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all storefront tables.
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS coupons",
		"DROP TABLE IF EXISTS products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
