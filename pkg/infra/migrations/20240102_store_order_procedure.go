package migrations

import (
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"gorm.io/gorm"
)

// p_store_order copies the staged order rows into orders and takes their
// quantity out of the product stock. It raises no_data_found when a product
// has not enough stock, which surfaces as a mapped database error.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240102_store_order_procedure",
		Name: "Create p_store_order stored procedure",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE OR REPLACE PROCEDURE p_store_order(newtab TEXT)
				LANGUAGE plpgsql
				AS $$
				DECLARE
					staged RECORD;
					touched INTEGER;
				BEGIN
					FOR staged IN EXECUTE format('SELECT * FROM %I', newtab) LOOP
						INSERT INTO orders (id, tenant_id, order_number, customer_id, product_id, quantity, order_date)
						VALUES (
							COALESCE(staged.id, gen_random_uuid()),
							staged.tenant_id,
							COALESCE(staged.order_number, nextval('order_number_seq')),
							staged.customer_id,
							staged.product_id,
							staged.quantity,
							COALESCE(staged.order_date, NOW())
						);

						UPDATE products
						SET stock = stock - staged.quantity
						WHERE id = staged.product_id
						  AND tenant_id = staged.tenant_id
						  AND stock >= staged.quantity;
						GET DIAGNOSTICS touched = ROW_COUNT;

						IF touched <> 1 THEN
							RAISE EXCEPTION 'stock update failed for product %', staged.product_id
								USING ERRCODE = 'no_data_found';
						END IF;
					END LOOP;
				END;
				$$;
			`).Error
		},
	})
}
